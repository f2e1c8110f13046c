package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rollcall/rollcall/internal/auth"
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
)

// RoleConfig holds configuration for the role middleware.
type RoleConfig struct {
	Logger *slog.Logger
	Repo   *repository.Repository
}

// RequireCoach returns middleware that enforces the coach role.
// Must be applied after Auth middleware. It loads the caller's profile
// and rejects with 403 unless the role is coach. Coach authority is
// flat: there is no per-resource ownership beyond this single check.
func RequireCoach(cfg RoleConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := auth.IdentityFromContext(r.Context())
			if id == nil {
				writeAuthError(w)
				return
			}

			profile, err := cfg.Repo.GetProfile(r.Context(), id.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrProfileNotFound) {
					// Authenticated but no profile record: treat like a
					// wrong role rather than leaking store state.
					writeRoleError(w)
					return
				}
				cfg.Logger.Error("store error during role check",
					slog.String("error", err.Error()),
					slog.String("user_id", id.UserID),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"An internal error occurred","code":"INTERNAL_ERROR"}`))
				return
			}

			if profile.Role != model.RoleCoach {
				cfg.Logger.Warn("authorization failed",
					slog.String("reason", "not_coach"),
					slog.String("user_id", id.UserID),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeRoleError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeRoleError writes a 403 Forbidden response.
func writeRoleError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"Only coaches can perform this action","code":"FORBIDDEN"}`))
}
