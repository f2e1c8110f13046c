package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rollcall/rollcall/internal/handler/dto"
	"github.com/rollcall/rollcall/internal/service"
)

func newTeamRouter(env *testEnv, userID string) *chi.Mux {
	h := NewTeamHandler(env.team, testLogger())
	r := chi.NewRouter()
	r.Use(asUser(userID))
	r.Post("/teams", h.Create)
	r.Get("/teams", h.List)
	r.Put("/teams/{id}", h.Update)
	return r
}

func TestTeamHandler_Create(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newTeamRouter(env, "coach-1")

	body := `{"name":"Varsity","athleteIds":["user-1","user-2"]}`
	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TeamResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Team == nil || resp.Team.ID == "" {
		t.Fatalf("team = %+v, want generated id", resp.Team)
	}
	if len(resp.Team.AthleteIDs) != 2 {
		t.Errorf("got %d athlete ids, want 2", len(resp.Team.AthleteIDs))
	}
}

func TestTeamHandler_CreateMissingName(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newTeamRouter(env, "coach-1")

	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(`{"athleteIds":[]}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "MISSING_FIELDS") {
		t.Errorf("body = %s, want MISSING_FIELDS code", rec.Body.String())
	}
}

func TestTeamHandler_CreateWithoutRoster(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newTeamRouter(env, "coach-1")

	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(`{"name":"Varsity"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// The roster serializes as [] rather than null.
	if !strings.Contains(rec.Body.String(), `"athleteIds":[]`) {
		t.Errorf("body = %s, want athleteIds as empty array", rec.Body.String())
	}
}

func TestTeamHandler_Update(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newTeamRouter(env, "coach-1")

	team, err := env.team.Create(context.Background(), service.CreateTeamInput{
		Name:       "Varsity",
		AthleteIDs: []string{"user-1"},
	}, "coach-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	body := `{"athleteIds":["user-1","user-2"]}`
	req := httptest.NewRequest(http.MethodPut, "/teams/"+team.ID, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TeamResponse
	decodeBody(t, rec, &resp)
	if len(resp.Team.AthleteIDs) != 2 {
		t.Errorf("got %d athlete ids, want 2", len(resp.Team.AthleteIDs))
	}
	if resp.Team.Name != "Varsity" {
		t.Errorf("name = %s, want Varsity (unpatched)", resp.Team.Name)
	}
}

func TestTeamHandler_UpdateMissing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(&fakeProvider{})
	r := newTeamRouter(env, "coach-1")

	req := httptest.NewRequest(http.MethodPut, "/teams/nope", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "TEAM_NOT_FOUND") {
		t.Errorf("body = %s, want TEAM_NOT_FOUND code", rec.Body.String())
	}
}
