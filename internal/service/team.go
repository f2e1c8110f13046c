package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rollcall/rollcall/internal/metrics"
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
)

// ErrTeamNotFound is returned for operations on a nonexistent team id.
var ErrTeamNotFound = errors.New("team not found")

// TeamService handles team roster business logic.
type TeamService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewTeamService creates a TeamService.
func NewTeamService(repo *repository.Repository, recorder metrics.Recorder) *TeamService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TeamService{repo: repo, metrics: recorder}
}

// CreateTeamInput defines input for creating a team.
type CreateTeamInput struct {
	Name       string
	AthleteIDs []string
}

// Create generates a fresh team id and persists the record. Athlete ids
// are accepted as given; whether each id names an actual athlete is not
// checked (accepted sparse-reference model).
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput, createdBy string) (*model.Team, error) {
	if input.Name == "" {
		return nil, ErrMissingFields
	}

	athleteIDs := input.AthleteIDs
	if athleteIDs == nil {
		athleteIDs = []string{}
	}

	team := &model.Team{
		ID:         ulid.Make().String(),
		Name:       input.Name,
		AthleteIDs: athleteIDs,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreateTeam(ctx, team); err != nil {
		return nil, err
	}

	s.metrics.IncTeamCreated()
	return team, nil
}

// Update applies a partial update to a team.
func (s *TeamService) Update(ctx context.Context, id string, patch repository.TeamPatch) (*model.Team, error) {
	team, err := s.repo.UpdateTeam(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	s.metrics.IncTeamUpdated()
	return team, nil
}

// List returns all teams, unordered.
func (s *TeamService) List(ctx context.Context) ([]*model.Team, error) {
	return s.repo.ListTeams(ctx)
}
