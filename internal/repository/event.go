package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/store"
)

// ErrEventNotFound is returned for operations on a nonexistent event id.
var ErrEventNotFound = errors.New("event not found")

// EventPatch carries a partial update. Nil fields are preserved from the
// stored record (shallow merge); id, createdBy, and createdAt are never
// patchable.
type EventPatch struct {
	Name     *string
	Type     *string
	Date     *string
	Time     *string
	Location *string
	TeamID   *string
}

// CreateEvent persists a fully populated event record.
func (r *Repository) CreateEvent(ctx context.Context, event *model.Event) error {
	if err := r.putEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by id.
func (r *Repository) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	data, err := r.store.Get(ctx, eventKey(id))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event model.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("unmarshal event %s: %w", id, err)
	}
	return &event, nil
}

// UpdateEvent applies a shallow merge of patch over the stored record
// and persists the result. The read and write are separate per-key
// operations; two concurrent updates race under last-write-wins.
func (r *Repository) UpdateEvent(ctx context.Context, id string, patch EventPatch) (*model.Event, error) {
	event, err := r.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Type != nil {
		event.Type = *patch.Type
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Time != nil {
		event.Time = *patch.Time
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.TeamID != nil {
		event.TeamID = *patch.TeamID
	}

	if err := r.putEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event record. Attendance records for the
// event are deliberately left in place (sparse-reference model); reads
// of the deleted event's attendance still reconstruct the full roster.
func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, eventKey(id)); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ListEvents returns every event record via prefix scan, unordered.
// Ordering by date is a presentation concern.
func (r *Repository) ListEvents(ctx context.Context) ([]*model.Event, error) {
	raws, err := r.store.GetByPrefix(ctx, eventKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*model.Event, 0, len(raws))
	for _, raw := range raws {
		var event model.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, fmt.Errorf("unmarshal event: %w", err)
		}
		events = append(events, &event)
	}
	return events, nil
}

func (r *Repository) putEvent(ctx context.Context, event *model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return r.store.Set(ctx, eventKey(event.ID), data)
}
