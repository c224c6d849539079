package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
	"eventhub-backend/internal/testutil"
)

func runTicketStoreContract(t *testing.T, newStore func(t *testing.T) TicketStore) {
	ctx := context.Background()
	eventID := bson.NewObjectID()

	s := newStore(t)
	for i, user := range []string{"alice", "bob", "alice"} {
		tk := &models.IssuedTicket{
			UserID:    user,
			EventID:   eventID,
			Name:      "GA",
			Quantity:  1,
			CreatedAt: contractNow.Add(time.Duration(i) * time.Minute),
		}
		if err := s.Insert(ctx, tk); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	mine, err := s.Find(ctx, TicketFilter{UserID: "alice"}, 0, 10)
	if err != nil || len(mine) != 2 {
		t.Fatalf("find by user = %d (%v)", len(mine), err)
	}
	if !mine[0].CreatedAt.After(mine[1].CreatedAt) {
		t.Fatalf("expected newest first")
	}
	if mine[0].Services == nil {
		t.Fatalf("expected services normalised to an empty list")
	}
	if n, _ := s.Count(ctx, TicketFilter{EventID: eventID}); n != 3 {
		t.Fatalf("count by event = %d", n)
	}

	id := mine[0].ID
	if n, err := s.MarkScanned(ctx, id, contractNow); err != nil || n != 1 {
		t.Fatalf("first scan matched %d (%v)", n, err)
	}
	if n, _ := s.MarkScanned(ctx, id, contractNow); n != 0 {
		t.Fatalf("second scan matched %d", n)
	}
	got, err := s.Load(ctx, id)
	if err != nil || !got.IsScanned || got.ScannedAt == nil {
		t.Fatalf("load scanned = %+v (%v)", got, err)
	}
	if _, err := s.Load(ctx, bson.NewObjectID()); err != models.ErrTicketNotFound {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestMemoryTicketStore(t *testing.T) {
	runTicketStoreContract(t, func(*testing.T) TicketStore { return NewMemoryTicketStore() })
}

func TestMongoTicketStore(t *testing.T) {
	runTicketStoreContract(t, func(t *testing.T) TicketStore {
		return NewMongoTicketStore(testutil.NewTestDatabase(t))
	})
}
