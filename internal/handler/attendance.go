package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rollcall/rollcall/internal/auth"
	"github.com/rollcall/rollcall/internal/handler/dto"
	"github.com/rollcall/rollcall/internal/service"
)

// AttendanceHandler handles HTTP requests for attendance operations.
type AttendanceHandler struct {
	svc    *service.AttendanceService
	logger *slog.Logger
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(svc *service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		svc:    svc,
		logger: logger,
	}
}

// Mark handles POST /attendance. The record is always written for the
// authenticated caller; the payload cannot name another user.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkAttendanceRequest
	if !decodeValid(w, r, &req) {
		return
	}

	att, err := h.svc.Mark(r.Context(), auth.UserIDFromContext(r.Context()), req.EventID, req.Status)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("attendance_marked",
		"user_id", att.UserID,
		"event_id", att.EventID,
		"status", string(att.Status),
	)

	writeJSON(w, http.StatusOK, dto.MarkAttendanceResponse{Success: true, Attendance: att})
}

// ForEvent handles GET /attendance/{eventID}.
func (h *AttendanceHandler) ForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	entries, err := h.svc.ForEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RosterResponse{Attendance: entries})
}

// All handles GET /attendance/all (coach only).
func (h *AttendanceHandler) All(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.AllEnriched(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EnrichedAttendanceResponse{Attendance: records})
}
