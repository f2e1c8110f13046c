package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rollcall/rollcall/internal/handler/dto"
	"github.com/rollcall/rollcall/internal/model"
)

func newAttendanceRouter(env *testEnv, userID string) *chi.Mux {
	h := NewAttendanceHandler(env.attendance, testLogger())
	r := chi.NewRouter()
	r.Use(asUser(userID))
	r.Post("/attendance", h.Mark)
	r.Get("/attendance/all", h.All)
	r.Get("/attendance/{eventID}", h.ForEvent)
	return r
}

func seedAthlete(t *testing.T, env *testEnv, id, name string) {
	t.Helper()
	if err := env.repo.CreateProfile(context.Background(), &model.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  name,
		Role:  model.RoleAthlete,
	}); err != nil {
		t.Fatalf("CreateProfile(%s) error = %v", id, err)
	}
}

func TestAttendanceHandler_Mark(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newAttendanceRouter(env, "user-1")

	body := `{"eventId":"event-1","status":"here"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp dto.MarkAttendanceResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Attendance.UserID != "user-1" {
		t.Errorf("userId = %s, want user-1 (from credential, not payload)", resp.Attendance.UserID)
	}
	if resp.Attendance.Status != model.StatusHere {
		t.Errorf("status = %s, want here", resp.Attendance.Status)
	}
}

func TestAttendanceHandler_MarkInvalidStatus(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newAttendanceRouter(env, "user-1")

	body := `{"eventId":"event-1","status":"maybe"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_STATUS") {
		t.Errorf("body = %s, want INVALID_STATUS code", rec.Body.String())
	}
}

func TestAttendanceHandler_MarkMissingEventID(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newAttendanceRouter(env, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(`{"status":"here"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// Full scenario: three athletes, two respond, the roster read shows all
// three with the silent one defaulting to unknown.
func TestAttendanceHandler_RosterReconstruction(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	seedAthlete(t, env, "user-1", "Alice")
	seedAthlete(t, env, "user-2", "Bob")
	seedAthlete(t, env, "user-3", "Cara")

	mark := func(userID, status string) {
		r := newAttendanceRouter(env, userID)
		body := `{"eventId":"event-1","status":"` + status + `"}`
		req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("mark %s status = %d, want 200", userID, rec.Code)
		}
	}
	mark("user-1", "here")
	mark("user-2", "absent")

	r := newAttendanceRouter(env, "coach-1")
	req := httptest.NewRequest(http.MethodGet, "/attendance/event-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.RosterResponse
	decodeBody(t, rec, &resp)
	if len(resp.Attendance) != 3 {
		t.Fatalf("got %d entries, want 3", len(resp.Attendance))
	}

	byUser := make(map[string]model.Status, len(resp.Attendance))
	for _, e := range resp.Attendance {
		byUser[e.UserID] = e.Status
	}
	if byUser["user-1"] != model.StatusHere {
		t.Errorf("user-1 status = %s, want here", byUser["user-1"])
	}
	if byUser["user-2"] != model.StatusAbsent {
		t.Errorf("user-2 status = %s, want absent", byUser["user-2"])
	}
	if byUser["user-3"] != model.StatusUnknown {
		t.Errorf("user-3 status = %s, want unknown", byUser["user-3"])
	}
}

func TestAttendanceHandler_All(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	seedAthlete(t, env, "user-1", "Alice")

	r := newAttendanceRouter(env, "user-1")
	body := `{"eventId":"event-1","status":"here"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/attendance/all", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.EnrichedAttendanceResponse
	decodeBody(t, rec, &resp)
	if len(resp.Attendance) != 1 {
		t.Fatalf("got %d records, want 1", len(resp.Attendance))
	}
	if resp.Attendance[0].Name != "Alice" {
		t.Errorf("name = %s, want Alice (enriched)", resp.Attendance[0].Name)
	}
}

// The literal /attendance/all route must win over the {eventID}
// parameter so aggregates are never read as an event id.
func TestAttendanceHandler_AllRouteNotShadowed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	seedAthlete(t, env, "user-1", "Alice")

	r := newAttendanceRouter(env, "user-1")
	req := httptest.NewRequest(http.MethodGet, "/attendance/all", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// An enriched response has no roster entries for silent athletes;
	// if the request had been routed to ForEvent, Alice would appear
	// with status unknown.
	var resp dto.EnrichedAttendanceResponse
	decodeBody(t, rec, &resp)
	if len(resp.Attendance) != 0 {
		t.Errorf("got %d records, want 0 (no marks yet)", len(resp.Attendance))
	}
}
