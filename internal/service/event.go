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

// ErrEventNotFound is returned for operations on a nonexistent event id.
var ErrEventNotFound = errors.New("event not found")

// EventService handles scheduled-event business logic.
type EventService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewEventService creates an EventService.
func NewEventService(repo *repository.Repository, recorder metrics.Recorder) *EventService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EventService{repo: repo, metrics: recorder}
}

// CreateEventInput defines input for creating an event.
type CreateEventInput struct {
	Name     string
	Type     string
	Date     string
	Time     string
	Location string
	TeamID   string
}

// Create generates a fresh event id, stamps the creator and creation
// time, and persists the record. Any coach may create events; there is
// no per-event ownership.
func (s *EventService) Create(ctx context.Context, input CreateEventInput, createdBy string) (*model.Event, error) {
	if input.Name == "" || input.Type == "" || input.Date == "" || input.Time == "" {
		return nil, ErrMissingFields
	}

	event := &model.Event{
		ID:        ulid.Make().String(),
		Name:      input.Name,
		Type:      input.Type,
		Date:      input.Date,
		Time:      input.Time,
		Location:  input.Location,
		TeamID:    input.TeamID,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	s.metrics.IncEventCreated()
	return event, nil
}

// Update applies a partial update to an event.
func (s *EventService) Update(ctx context.Context, id string, patch repository.EventPatch) (*model.Event, error) {
	event, err := s.repo.UpdateEvent(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	s.metrics.IncEventUpdated()
	return event, nil
}

// Delete removes an event. Deleting a missing id is a no-op: the route
// contract has no not-found case and retries must stay safe. Attendance
// records for the event are left in place.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil
		}
		return err
	}

	s.metrics.IncEventDeleted()
	return nil
}

// List returns all events, unordered.
func (s *EventService) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.ListEvents(ctx)
}
