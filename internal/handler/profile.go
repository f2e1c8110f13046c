package handler

import (
	"log/slog"
	"net/http"

	"github.com/rollcall/rollcall/internal/auth"
	"github.com/rollcall/rollcall/internal/handler/dto"
	"github.com/rollcall/rollcall/internal/service"
)

// ProfileHandler handles signup and profile reads.
type ProfileHandler struct {
	svc    *service.ProfileService
	logger *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signup handles POST /signup. The only unauthenticated operation:
// creation is delegated to the identity provider's admin-create.
func (h *ProfileHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.svc.SignUp(r.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_signed_up",
		"user_id", user.ID,
		"role", string(user.Role),
	)

	writeJSON(w, http.StatusOK, dto.SignupResponse{Success: true, User: user})
}

// GetProfile handles GET /profile for the authenticated caller.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	profile, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{Profile: profile})
}

// ListAthletes handles GET /athletes.
func (h *ProfileHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.svc.ListAthletes(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AthleteListResponse{Athletes: athletes})
}
