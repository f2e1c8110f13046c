// Package main is the entrypoint for the Rollcall API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rollcall/rollcall/internal/config"
	"github.com/rollcall/rollcall/internal/handler"
	"github.com/rollcall/rollcall/internal/identity"
	"github.com/rollcall/rollcall/internal/metrics"
	"github.com/rollcall/rollcall/internal/middleware"
	"github.com/rollcall/rollcall/internal/repository"
	"github.com/rollcall/rollcall/internal/server"
	"github.com/rollcall/rollcall/internal/service"
	"github.com/rollcall/rollcall/internal/store"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize key-value store
	kv, err := store.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer kv.Close()
	logger.Info("connected to Redis")

	// Initialize identity provider
	verifier := identity.NewTokenVerifier(cfg.AuthTokenSecret, cfg.AuthTokenIssuer)
	provider := identity.NewRemoteProvider(cfg.IdentityURL, cfg.IdentityAdminKey, verifier)

	// Initialize repository and services
	repo := repository.New(kv)
	metricsRecorder := metrics.NewNoop()
	profileService := service.NewProfileService(repo, provider, metricsRecorder)
	eventService := service.NewEventService(repo, metricsRecorder)
	teamService := service.NewTeamService(repo, metricsRecorder)
	attendanceService := service.NewAttendanceService(repo, metricsRecorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(kv, provider)
	profileHandler := handler.NewProfileHandler(profileService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	teamHandler := handler.NewTeamHandler(teamService, logger)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, profileHandler, eventHandler, teamHandler, attendanceHandler, provider, repo, kv, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	profileHandler *handler.ProfileHandler,
	eventHandler *handler.EventHandler,
	teamHandler *handler.TeamHandler,
	attendanceHandler *handler.AttendanceHandler,
	provider identity.Provider,
	repo *repository.Repository,
	kv *store.RedisStore,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", h.Hello)

	// Auth middleware configuration
	authCfg := middleware.AuthConfig{
		Logger:   logger,
		Provider: provider,
	}

	// Coach role middleware configuration
	roleCfg := middleware.RoleConfig{
		Logger: logger,
		Repo:   repo,
	}

	// Rate limit middleware configuration
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:    logger,
		Limiter:   kv,
		Enabled:   cfg.SignupRateLimitEnabled,
		PerMinute: cfg.SignupRateLimitPerMinute,
		Burst:     cfg.SignupRateLimitBurst,
	}

	// Signup (no auth, rate limited per client IP)
	r.With(middleware.RateLimitSignup(rateLimitCfg)).Post("/signup", profileHandler.Signup)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authCfg))

		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/athletes", profileHandler.ListAthletes)

		r.Get("/events", eventHandler.List)
		r.Get("/teams", teamHandler.List)

		r.Post("/attendance", attendanceHandler.Mark)
		// Register /attendance/all before /attendance/{eventID} so the
		// literal segment wins.
		r.With(middleware.RequireCoach(roleCfg)).Get("/attendance/all", attendanceHandler.All)
		r.Get("/attendance/{eventID}", attendanceHandler.ForEvent)

		// Coach-only mutations
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCoach(roleCfg))

			r.Post("/events", eventHandler.Create)
			r.Put("/events/{id}", eventHandler.Update)
			r.Delete("/events/{id}", eventHandler.Delete)

			r.Post("/teams", teamHandler.Create)
			r.Put("/teams/{id}", teamHandler.Update)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
