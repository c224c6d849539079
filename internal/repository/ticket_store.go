package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

// TicketStore persists issued tickets in their own collection.
type TicketStore interface {
	Insert(ctx context.Context, t *models.IssuedTicket) error
	Load(ctx context.Context, id bson.ObjectID) (*models.IssuedTicket, error)
	// MarkScanned flips is_scanned false -> true. It matches nothing when the
	// ticket is missing or already scanned.
	MarkScanned(ctx context.Context, id bson.ObjectID, at time.Time) (int64, error)
	Find(ctx context.Context, f TicketFilter, skip, limit int64) ([]models.IssuedTicket, error)
	Count(ctx context.Context, f TicketFilter) (int64, error)
}

type TicketFilter struct {
	UserID  string
	EventID bson.ObjectID
}

func (f TicketFilter) Matches(t *models.IssuedTicket) bool {
	if f.UserID != "" && t.UserID != f.UserID {
		return false
	}
	if !f.EventID.IsZero() && t.EventID != f.EventID {
		return false
	}
	return true
}
