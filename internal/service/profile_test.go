package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rollcall/rollcall/internal/identity"
	"github.com/rollcall/rollcall/internal/metrics"
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
	"github.com/rollcall/rollcall/internal/store"
)

// fakeProvider implements identity.Provider for unit tests.
type fakeProvider struct {
	nextID      string
	createErr   error
	createCalls int
}

func (f *fakeProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	return "", identity.ErrInvalidToken
}

func (f *fakeProvider) CreateUser(ctx context.Context, input identity.CreateUserInput) (string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.nextID, nil
}

func newTestProfileService(provider identity.Provider) (*ProfileService, *repository.Repository) {
	repo := repository.New(store.NewMemory())
	return NewProfileService(repo, provider, metrics.NewNoop()), repo
}

func TestProfileService_SignUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeProvider{nextID: "user-1"}
	svc, repo := newTestProfileService(provider)

	user, err := svc.SignUp(ctx, SignupInput{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
		Role:     "athlete",
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if user.ID != "user-1" {
		t.Errorf("ID = %s, want user-1", user.ID)
	}
	if user.Role != model.RoleAthlete {
		t.Errorf("Role = %s, want athlete", user.Role)
	}

	stored, err := repo.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if stored.Email != "alice@example.com" {
		t.Errorf("stored Email = %s, want alice@example.com", stored.Email)
	}
}

func TestProfileService_SignUpMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input SignupInput
	}{
		{"missing email", SignupInput{Password: "p", Name: "n", Role: "athlete"}},
		{"missing password", SignupInput{Email: "e@x.com", Name: "n", Role: "athlete"}},
		{"missing name", SignupInput{Email: "e@x.com", Password: "p", Role: "athlete"}},
		{"missing role", SignupInput{Email: "e@x.com", Password: "p", Name: "n"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &fakeProvider{nextID: "user-1"}
			svc, _ := newTestProfileService(provider)

			_, err := svc.SignUp(context.Background(), tt.input)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("SignUp() error = %v, want ErrMissingFields", err)
			}
			if provider.createCalls != 0 {
				t.Error("provider called despite validation failure")
			}
		})
	}
}

func TestProfileService_SignUpInvalidRole(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{nextID: "user-1"}
	svc, _ := newTestProfileService(provider)

	_, err := svc.SignUp(context.Background(), SignupInput{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
		Role:     "admin",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("SignUp() error = %v, want ErrInvalidRole", err)
	}
	if provider.createCalls != 0 {
		t.Error("provider called despite invalid role")
	}
}

func TestProfileService_SignUpProviderRejected(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		createErr: fmt.Errorf("%w: email already registered", identity.ErrRejected),
	}
	svc, _ := newTestProfileService(provider)

	_, err := svc.SignUp(context.Background(), SignupInput{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
		Role:     "athlete",
	})
	if !errors.Is(err, identity.ErrRejected) {
		t.Errorf("SignUp() error = %v, want identity.ErrRejected", err)
	}
}

func TestProfileService_GetProfileMissing(t *testing.T) {
	t.Parallel()

	svc, _ := newTestProfileService(&fakeProvider{})

	_, err := svc.GetProfile(context.Background(), "nope")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileService_ListAthletes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProfileService(&fakeProvider{})

	seed := []*model.User{
		{ID: "user-1", Email: "a@x.com", Name: "A", Role: model.RoleAthlete},
		{ID: "coach-1", Email: "c@x.com", Name: "C", Role: model.RoleCoach},
	}
	for _, u := range seed {
		if err := repo.CreateProfile(ctx, u); err != nil {
			t.Fatalf("CreateProfile() error = %v", err)
		}
	}

	athletes, err := svc.ListAthletes(ctx)
	if err != nil {
		t.Fatalf("ListAthletes() error = %v", err)
	}
	if len(athletes) != 1 {
		t.Fatalf("got %d athletes, want 1", len(athletes))
	}
	if athletes[0].ID != "user-1" {
		t.Errorf("athlete = %s, want user-1", athletes[0].ID)
	}
}
