package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/store"
)

// ErrTeamNotFound is returned for operations on a nonexistent team id.
var ErrTeamNotFound = errors.New("team not found")

// TeamPatch carries a partial update with the same shallow-merge
// semantics as EventPatch. A non-nil AthleteIDs replaces the whole
// roster set.
type TeamPatch struct {
	Name       *string
	AthleteIDs *[]string
}

// CreateTeam persists a fully populated team record. Listed athlete ids
// are accepted as-is; membership existence is not validated.
func (r *Repository) CreateTeam(ctx context.Context, team *model.Team) error {
	if err := r.putTeam(ctx, team); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// GetTeam retrieves a team by id.
func (r *Repository) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	data, err := r.store.Get(ctx, teamKey(id))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, fmt.Errorf("unmarshal team %s: %w", id, err)
	}
	return &team, nil
}

// UpdateTeam applies a shallow merge of patch over the stored record and
// persists the result.
func (r *Repository) UpdateTeam(ctx context.Context, id string, patch TeamPatch) (*model.Team, error) {
	team, err := r.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		team.Name = *patch.Name
	}
	if patch.AthleteIDs != nil {
		team.AthleteIDs = *patch.AthleteIDs
	}

	if err := r.putTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// ListTeams returns every team record via prefix scan, unordered.
func (r *Repository) ListTeams(ctx context.Context) ([]*model.Team, error) {
	raws, err := r.store.GetByPrefix(ctx, teamKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*model.Team, 0, len(raws))
	for _, raw := range raws {
		var team model.Team
		if err := json.Unmarshal(raw, &team); err != nil {
			return nil, fmt.Errorf("unmarshal team: %w", err)
		}
		teams = append(teams, &team)
	}
	return teams, nil
}

func (r *Repository) putTeam(ctx context.Context, team *model.Team) error {
	if team.AthleteIDs == nil {
		team.AthleteIDs = []string{}
	}

	data, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("marshal team: %w", err)
	}
	return r.store.Set(ctx, teamKey(team.ID), data)
}
