package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/store"
)

// Common errors for profile repository operations.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("invalid role")
)

// CreateProfile writes the profile record. Writes under the same id
// overwrite (store semantics), making profile creation idempotent per
// user id. Email uniqueness is the identity provider's concern.
func (r *Repository) CreateProfile(ctx context.Context, user *model.User) error {
	if !user.Role.IsValid() {
		return ErrInvalidRole
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := r.store.Set(ctx, userKey(user.ID), data); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by user id.
func (r *Repository) GetProfile(ctx context.Context, id string) (*model.User, error) {
	data, err := r.store.Get(ctx, userKey(id))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal profile %s: %w", id, err)
	}
	return &user, nil
}

// ListProfiles returns every profile record via prefix scan, unordered.
func (r *Repository) ListProfiles(ctx context.Context) ([]*model.User, error) {
	raws, err := r.store.GetByPrefix(ctx, userKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	users := make([]*model.User, 0, len(raws))
	for _, raw := range raws {
		var user model.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		users = append(users, &user)
	}
	return users, nil
}

// ListProfilesByRole scans all profiles and filters by role in memory.
// O(total users) per call - acceptable at single-team scale.
func (r *Repository) ListProfilesByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	users, err := r.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.User, 0, len(users))
	for _, user := range users {
		if user.Role == role {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}
