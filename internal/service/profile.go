// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollcall/rollcall/internal/identity"
	"github.com/rollcall/rollcall/internal/metrics"
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
)

// Profile service errors.
var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidRole     = errors.New("invalid role")
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileService handles signup and profile reads.
type ProfileService struct {
	repo     *repository.Repository
	provider identity.Provider
	metrics  metrics.Recorder
}

// NewProfileService creates a ProfileService.
func NewProfileService(repo *repository.Repository, provider identity.Provider, recorder metrics.Recorder) *ProfileService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ProfileService{
		repo:     repo,
		provider: provider,
		metrics:  recorder,
	}
}

// SignupInput defines input for creating a user.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// SignUp creates the user at the identity provider, then writes the
// descriptive profile record. The provider enforces email uniqueness
// and owns the credential; the role is fixed at signup (no role-change
// operation exists).
func (s *ProfileService) SignUp(ctx context.Context, input SignupInput) (*model.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Role == "" {
		return nil, ErrMissingFields
	}

	role := model.Role(input.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	userID, err := s.provider.CreateUser(ctx, identity.CreateUserInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Role:     input.Role,
	})
	if err != nil {
		// identity.ErrRejected passes through for the handler to surface
		// the provider's message.
		return nil, err
	}

	user := &model.User{
		ID:    userID,
		Email: input.Email,
		Name:  input.Name,
		Role:  role,
	}

	if err := s.repo.CreateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrInvalidRole) {
			return nil, ErrInvalidRole
		}
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	s.metrics.IncSignup()
	return user, nil
}

// GetProfile returns the profile record for a user id.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListAthletes returns every profile with the athlete role.
func (s *ProfileService) ListAthletes(ctx context.Context) ([]*model.User, error) {
	return s.repo.ListProfilesByRole(ctx, model.RoleAthlete)
}
