package repository

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

type MemoryTicketStore struct {
	mu      sync.Mutex
	tickets map[bson.ObjectID]models.IssuedTicket
}

func NewMemoryTicketStore() *MemoryTicketStore {
	return &MemoryTicketStore{tickets: make(map[bson.ObjectID]models.IssuedTicket)}
}

func (s *MemoryTicketStore) Insert(ctx context.Context, t *models.IssuedTicket) error {
	if err := ctx.Err(); err != nil {
		return storeErr("insert ticket", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	if _, ok := s.tickets[t.ID]; ok {
		return storeErr("insert ticket", fmt.Errorf("duplicate _id %s", t.ID.Hex()))
	}
	if t.Services == nil {
		t.Services = []models.AddOnService{}
	}
	cp := *t
	cp.Services = slices.Clone(t.Services)
	s.tickets[t.ID] = cp
	return nil
}

func (s *MemoryTicketStore) Load(ctx context.Context, id bson.ObjectID) (*models.IssuedTicket, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("load ticket", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, models.ErrTicketNotFound
	}
	t.Services = slices.Clone(t.Services)
	return &t, nil
}

func (s *MemoryTicketStore) MarkScanned(ctx context.Context, id bson.ObjectID, at time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("mark ticket scanned", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok || t.IsScanned {
		return 0, nil
	}
	t.IsScanned = true
	t.ScannedAt = &at
	s.tickets[id] = t
	return 1, nil
}

func (s *MemoryTicketStore) Find(ctx context.Context, f TicketFilter, skip, limit int64) ([]models.IssuedTicket, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("find tickets", err)
	}
	s.mu.Lock()
	matched := make([]models.IssuedTicket, 0)
	for _, t := range s.tickets {
		if f.Matches(&t) {
			matched = append(matched, t)
		}
	}
	s.mu.Unlock()

	// newest first, like the Mongo sort
	slices.SortFunc(matched, func(a, b models.IssuedTicket) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(b.ID[:], a.ID[:])
	})

	out := []models.IssuedTicket{}
	for i := skip; i < int64(len(matched)); i++ {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, matched[i])
	}
	return out, nil
}

func (s *MemoryTicketStore) Count(ctx context.Context, f TicketFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("count tickets", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, t := range s.tickets {
		if f.Matches(&t) {
			n++
		}
	}
	return n, nil
}
