package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

// EventStore turns aggregate-level operations into single-document atomic
// writes. Every write returns how many documents matched (0 or 1).
type EventStore interface {
	Insert(ctx context.Context, ev *models.Event) error
	Load(ctx context.Context, id bson.ObjectID, proj models.Projection) (*models.Event, error)
	ReplaceWhole(ctx context.Context, id bson.ObjectID, ev *models.Event) error
	ApplyFieldUpdate(ctx context.Context, id bson.ObjectID, set FieldUpdate) (int64, error)
	TransitionStatus(ctx context.Context, id bson.ObjectID, from []models.EventStatus, to models.EventStatus) (int64, error)

	PushArrayElement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elem any) (int64, error)
	// ApplyArrayElementUpdate replaces one element in place. With keep set,
	// the stored keep.Counter survives the write and the write only matches
	// while that counter fits within the new keep.Capacity.
	ApplyArrayElementUpdate(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string, elem any, keep *models.CounterGuard) (int64, error)
	PullArrayElement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string) (int64, error)
	// ApplyAtomicIncrement adds delta to guard.Counter of one element only if
	// the result stays within [0, guard.Capacity]. Guard and increment are
	// submitted as a single conditional update.
	ApplyAtomicIncrement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string, delta int, guard models.CounterGuard) (int64, error)

	Find(ctx context.Context, f EventFilter, proj models.Projection, skip, limit int64) ([]models.Event, error)
	Count(ctx context.Context, f EventFilter) (int64, error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}

// FieldUpdate maps top-level bson keys to their new values.
type FieldUpdate map[string]any

// Top-level keys accepted by ApplyFieldUpdate.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldType        = "type"
	FieldContact     = "contact"
	FieldVisibility  = "visibility"
	FieldPoster      = "poster"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldStartTime   = "start_time"
)

// EventFilter fields are optional and AND-composed.
type EventFilter struct {
	OrganizerID string
	Type        string
	Visibility  models.Visibility
	Status      models.EventStatus

	// StartFrom/StartBefore bound start_date as [StartFrom, StartBefore).
	StartFrom   time.Time
	StartBefore time.Time

	// OverlapStart/OverlapEnd select events whose [start, end] intersects
	// [OverlapStart, OverlapEnd], both ends inclusive.
	OverlapStart time.Time
	OverlapEnd   time.Time
}

// Matches evaluates the filter in memory with the same semantics the Mongo
// translation has.
func (f EventFilter) Matches(e *models.Event) bool {
	if f.OrganizerID != "" && e.OrganizerID != f.OrganizerID {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Visibility != "" && e.Visibility != f.Visibility {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if !f.StartFrom.IsZero() && e.StartDate.Before(f.StartFrom) {
		return false
	}
	if !f.StartBefore.IsZero() && !e.StartDate.Before(f.StartBefore) {
		return false
	}
	if !f.OverlapEnd.IsZero() && e.StartDate.After(f.OverlapEnd) {
		return false
	}
	if !f.OverlapStart.IsZero() && e.EndDate.Before(f.OverlapStart) {
		return false
	}
	return true
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, models.ErrStoreUnavailable, err)
}
