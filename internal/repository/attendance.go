package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rollcall/rollcall/internal/model"
)

// SetAttendance writes the single record keyed by (eventID, userID),
// overwriting any previous status. Last write wins; two devices of the
// same athlete can race and the later write replaces the earlier one.
func (r *Repository) SetAttendance(ctx context.Context, att *model.Attendance) error {
	data, err := json.Marshal(att)
	if err != nil {
		return fmt.Errorf("marshal attendance: %w", err)
	}

	if err := r.store.Set(ctx, attendanceKey(att.EventID, att.UserID), data); err != nil {
		return fmt.Errorf("failed to set attendance: %w", err)
	}
	return nil
}

// ListEventAttendance returns the sparse attendance records for one
// event. Athletes who have not acted have no record here.
func (r *Repository) ListEventAttendance(ctx context.Context, eventID string) ([]*model.Attendance, error) {
	return r.scanAttendance(ctx, attendanceEventPrefix(eventID))
}

// ListAllAttendance returns every attendance record irrespective of event.
func (r *Repository) ListAllAttendance(ctx context.Context) ([]*model.Attendance, error) {
	return r.scanAttendance(ctx, attendanceKeyPrefix)
}

// GetAttendanceForEvent reconstructs the full attendance list for an
// event by left-joining the roster against the event's sparse records.
//
// The roster is the global athlete population, not a team's membership;
// at single-team scale the two coincide and the original system never
// scoped the join. Every athlete appears exactly once, defaulting to
// StatusUnknown when no record exists - an athlete who has not yet
// responded is never silently omitted.
//
// The two prefix scans (attendance, then profiles) are independent
// snapshots, not a transaction. A profile created between the scans may
// or may not appear, and a record for a since-deleted athlete may
// appear transiently. This read skew is tolerated, not hidden.
// Order follows the profile scan; callers needing stable order sort.
func (r *Repository) GetAttendanceForEvent(ctx context.Context, eventID string) ([]*model.RosterEntry, error) {
	records, err := r.ListEventAttendance(ctx, eventID)
	if err != nil {
		return nil, err
	}

	statusByUser := make(map[string]model.Status, len(records))
	for _, record := range records {
		statusByUser[record.UserID] = record.Status
	}

	athletes, err := r.ListProfilesByRole(ctx, model.RoleAthlete)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.RosterEntry, 0, len(athletes))
	for _, athlete := range athletes {
		status, ok := statusByUser[athlete.ID]
		if !ok {
			status = model.StatusUnknown
		}
		entries = append(entries, &model.RosterEntry{
			UserID: athlete.ID,
			Name:   athlete.Name,
			Email:  athlete.Email,
			Status: status,
		})
	}
	return entries, nil
}

// ListAllAttendanceEnriched returns every attendance record joined with
// the user's name and email. Records whose user id no longer resolves
// degrade to "Unknown" instead of failing; orphaned records from
// deleted events or users still show up in aggregates.
func (r *Repository) ListAllAttendanceEnriched(ctx context.Context) ([]*model.EnrichedAttendance, error) {
	records, err := r.ListAllAttendance(ctx)
	if err != nil {
		return nil, err
	}

	users, err := r.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]*model.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	enriched := make([]*model.EnrichedAttendance, 0, len(records))
	for _, record := range records {
		entry := &model.EnrichedAttendance{
			Attendance: *record,
			Name:       "Unknown",
			Email:      "Unknown",
		}
		if user, ok := usersByID[record.UserID]; ok {
			entry.Name = user.Name
			entry.Email = user.Email
		}
		enriched = append(enriched, entry)
	}
	return enriched, nil
}

func (r *Repository) scanAttendance(ctx context.Context, prefix string) ([]*model.Attendance, error) {
	raws, err := r.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	records := make([]*model.Attendance, 0, len(raws))
	for _, raw := range raws {
		var att model.Attendance
		if err := json.Unmarshal(raw, &att); err != nil {
			return nil, fmt.Errorf("unmarshal attendance: %w", err)
		}
		records = append(records, &att)
	}
	return records, nil
}
