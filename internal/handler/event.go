package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rollcall/rollcall/internal/auth"
	"github.com/rollcall/rollcall/internal/handler/dto"
	"github.com/rollcall/rollcall/internal/service"
)

// EventHandler handles HTTP requests for event operations.
type EventHandler struct {
	svc    *service.EventService
	logger *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc *service.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /events (coach only).
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequest
	if !decodeValid(w, r, &req) {
		return
	}

	event, err := h.svc.Create(r.Context(), service.CreateEventInput{
		Name:     req.Name,
		Type:     req.Type,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		TeamID:   req.TeamID,
	}, auth.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("event_created",
		"event_id", event.ID,
		"type", event.Type,
		"created_by", event.CreatedBy,
	)

	writeJSON(w, http.StatusOK, dto.EventResponse{Success: true, Event: event})
}

// List handles GET /events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EventListResponse{Events: events})
}

// Update handles PUT /events/{id} (coach only).
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateEventRequest
	if !decodeValid(w, r, &req) {
		return
	}

	event, err := h.svc.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("event_updated", "event_id", event.ID)

	writeJSON(w, http.StatusOK, dto.EventResponse{Success: true, Event: event})
}

// Delete handles DELETE /events/{id} (coach only). Idempotent: deleting
// a missing event still succeeds.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("event_deleted", "event_id", id)

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}
