package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rollcall/rollcall/internal/auth"
	"github.com/rollcall/rollcall/internal/handler/dto"
	"github.com/rollcall/rollcall/internal/service"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	svc    *service.TeamService
	logger *slog.Logger
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(svc *service.TeamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /teams (coach only).
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTeamRequest
	if !decodeValid(w, r, &req) {
		return
	}

	team, err := h.svc.Create(r.Context(), service.CreateTeamInput{
		Name:       req.Name,
		AthleteIDs: req.AthleteIDs,
	}, auth.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("team_created",
		"team_id", team.ID,
		"roster_size", len(team.AthleteIDs),
	)

	writeJSON(w, http.StatusOK, dto.TeamResponse{Success: true, Team: team})
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TeamListResponse{Teams: teams})
}

// Update handles PUT /teams/{id} (coach only).
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateTeamRequest
	if !decodeValid(w, r, &req) {
		return
	}

	team, err := h.svc.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("team_updated", "team_id", team.ID)

	writeJSON(w, http.StatusOK, dto.TeamResponse{Success: true, Team: team})
}
