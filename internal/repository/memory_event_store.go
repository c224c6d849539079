package repository

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/models"
)

// MemoryEventStore keeps events in process. The mutex stands in for the
// per-document atomicity Mongo gives, so its guarded increment has the same
// all-or-nothing behaviour.
type MemoryEventStore struct {
	mu     sync.Mutex
	events map[bson.ObjectID]*models.Event
	clock  clock.Clock
}

func NewMemoryEventStore(clk clock.Clock) *MemoryEventStore {
	return &MemoryEventStore{
		events: make(map[bson.ObjectID]*models.Event),
		clock:  clk,
	}
}

func (s *MemoryEventStore) Insert(ctx context.Context, ev *models.Event) error {
	if err := ctx.Err(); err != nil {
		return storeErr("insert event", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.ID.IsZero() {
		ev.ID = bson.NewObjectID()
	}
	if _, ok := s.events[ev.ID]; ok {
		return storeErr("insert event", fmt.Errorf("duplicate _id %s", ev.ID.Hex()))
	}
	normalizeArrays(ev)
	s.events[ev.ID] = cloneEvent(ev)
	return nil
}

func (s *MemoryEventStore) Load(ctx context.Context, id bson.ObjectID, proj models.Projection) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("load event", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	return project(cloneEvent(ev), proj), nil
}

func (s *MemoryEventStore) ReplaceWhole(ctx context.Context, id bson.ObjectID, ev *models.Event) error {
	if err := ctx.Err(); err != nil {
		return storeErr("replace event", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return models.ErrEventNotFound
	}
	ev.ID = id
	ev.UpdatedAt = s.clock.Now()
	normalizeArrays(ev)
	s.events[id] = cloneEvent(ev)
	return nil
}

func (s *MemoryEventStore) ApplyFieldUpdate(ctx context.Context, id bson.ObjectID, set FieldUpdate) (int64, error) {
	return s.mutate(ctx, "update event fields", id, func(ev *models.Event) (bool, error) {
		for k, v := range set {
			if err := setField(ev, k, v); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

func (s *MemoryEventStore) TransitionStatus(ctx context.Context, id bson.ObjectID, from []models.EventStatus, to models.EventStatus) (int64, error) {
	return s.mutate(ctx, "transition event status", id, func(ev *models.Event) (bool, error) {
		if !slices.Contains(from, ev.Status) {
			return false, nil
		}
		ev.Status = to
		return true, nil
	})
}

func (s *MemoryEventStore) PushArrayElement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elem any) (int64, error) {
	return s.mutate(ctx, "push "+string(field), id, func(ev *models.Event) (bool, error) {
		switch v := elem.(type) {
		case models.Resource:
			if field == models.ArrayResources {
				ev.Resources = append(ev.Resources, v)
				return true, nil
			}
		case models.Program:
			if field == models.ArrayPrograms {
				ev.Programs = append(ev.Programs, v)
				return true, nil
			}
		case models.EventTicket:
			if field == models.ArrayTickets {
				ev.Tickets = append(ev.Tickets, v)
				return true, nil
			}
		}
		return false, fmt.Errorf("element %T does not belong to %s", elem, field)
	})
}

func (s *MemoryEventStore) ApplyArrayElementUpdate(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string, elem any, keep *models.CounterGuard) (int64, error) {
	return s.mutate(ctx, "update "+string(field)+" element", id, func(ev *models.Event) (bool, error) {
		switch v := elem.(type) {
		case models.Resource:
			if field != models.ArrayResources {
				break
			}
			return replaceByID(ev.Resources, elemID, func(cur models.Resource) (models.Resource, bool) {
				if keep != nil {
					v.Reserved = cur.Reserved
				}
				return v, v.Reserved <= v.Quantity || keep == nil
			}, func(r models.Resource) string { return r.ID }), nil
		case models.Program:
			if field != models.ArrayPrograms {
				break
			}
			return replaceByID(ev.Programs, elemID, func(models.Program) (models.Program, bool) {
				return v, true
			}, func(p models.Program) string { return p.ID }), nil
		case models.EventTicket:
			if field != models.ArrayTickets {
				break
			}
			return replaceByID(ev.Tickets, elemID, func(cur models.EventTicket) (models.EventTicket, bool) {
				if keep != nil {
					v.Sold = cur.Sold
				}
				return v, v.Sold <= v.Quantity || keep == nil
			}, func(t models.EventTicket) string { return t.ID }), nil
		}
		return false, fmt.Errorf("element %T does not belong to %s", elem, field)
	})
}

func (s *MemoryEventStore) PullArrayElement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string) (int64, error) {
	return s.mutate(ctx, "pull "+string(field)+" element", id, func(ev *models.Event) (bool, error) {
		var removed bool
		switch field {
		case models.ArrayResources:
			ev.Resources, removed = removeByID(ev.Resources, elemID, func(r models.Resource) string { return r.ID })
		case models.ArrayPrograms:
			ev.Programs, removed = removeByID(ev.Programs, elemID, func(p models.Program) string { return p.ID })
		case models.ArrayTickets:
			ev.Tickets, removed = removeByID(ev.Tickets, elemID, func(t models.EventTicket) string { return t.ID })
		default:
			return false, fmt.Errorf("unknown array %s", field)
		}
		return removed, nil
	})
}

func (s *MemoryEventStore) ApplyAtomicIncrement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string, delta int, guard models.CounterGuard) (int64, error) {
	op := "guarded increment " + string(field) + "." + guard.Counter
	return s.mutate(ctx, op, id, func(ev *models.Event) (bool, error) {
		counter, capacity, ok := counterRefs(ev, field, elemID, guard)
		if !ok {
			return false, nil
		}
		next := *counter + delta
		if next < 0 || next > capacity {
			return false, nil
		}
		*counter = next
		return true, nil
	})
}

func (s *MemoryEventStore) Find(ctx context.Context, f EventFilter, proj models.Projection, skip, limit int64) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("find events", err)
	}
	s.mu.Lock()
	matched := make([]*models.Event, 0, len(s.events))
	for _, ev := range s.events {
		if f.Matches(ev) {
			matched = append(matched, cloneEvent(ev))
		}
	}
	s.mu.Unlock()

	slices.SortFunc(matched, func(a, b *models.Event) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	out := []models.Event{}
	for i := skip; i < int64(len(matched)); i++ {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, *project(matched[i], proj))
	}
	return out, nil
}

func (s *MemoryEventStore) Count(ctx context.Context, f EventFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("count events", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, ev := range s.events {
		if f.Matches(ev) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryEventStore) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("delete event", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return 0, nil
	}
	delete(s.events, id)
	return 1, nil
}

// mutate applies fn to the stored document under the lock. fn reports
// whether the document matched the write's filter.
func (s *MemoryEventStore) mutate(ctx context.Context, op string, id bson.ObjectID, fn func(ev *models.Event) (bool, error)) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr(op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.events[id]
	if !ok {
		return 0, nil
	}
	work := cloneEvent(stored)
	matched, err := fn(work)
	if err != nil {
		return 0, storeErr(op, err)
	}
	if !matched {
		return 0, nil
	}
	work.UpdatedAt = s.clock.Now()
	s.events[id] = work
	return 1, nil
}

func setField(ev *models.Event, key string, v any) error {
	var ok bool
	switch key {
	case FieldTitle:
		ev.Title, ok = v.(string)
	case FieldDescription:
		ev.Description, ok = v.(string)
	case FieldType:
		ev.Type, ok = v.(string)
	case FieldContact:
		ev.Contact, ok = v.(string)
	case FieldPoster:
		ev.Poster, ok = v.(string)
	case FieldStartTime:
		ev.StartTime, ok = v.(string)
	case FieldVisibility:
		ev.Visibility, ok = v.(models.Visibility)
	case FieldStartDate:
		ev.StartDate, ok = v.(time.Time)
	case FieldEndDate:
		ev.EndDate, ok = v.(time.Time)
	default:
		return fmt.Errorf("field %q is not settable", key)
	}
	if !ok {
		return fmt.Errorf("field %q: unexpected value %T", key, v)
	}
	return nil
}

func counterRefs(ev *models.Event, field models.ArrayField, elemID string, guard models.CounterGuard) (*int, int, bool) {
	switch field {
	case models.ArrayResources:
		for i := range ev.Resources {
			if r := &ev.Resources[i]; r.ID == elemID && guard == models.ReservedGuard {
				return &r.Reserved, r.Quantity, true
			}
		}
	case models.ArrayTickets:
		for i := range ev.Tickets {
			if t := &ev.Tickets[i]; t.ID == elemID && guard == models.SoldGuard {
				return &t.Sold, t.Quantity, true
			}
		}
	}
	return nil, 0, false
}

// replaceByID swaps the element with the given id for the value next
// builds from it. next reports false when the write's guard fails.
func replaceByID[T any](items []T, id string, next func(cur T) (T, bool), idOf func(T) string) bool {
	for i := range items {
		if idOf(items[i]) == id {
			v, ok := next(items[i])
			if !ok {
				return false
			}
			items[i] = v
			return true
		}
	}
	return false
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			return slices.Delete(items, i, i+1), true
		}
	}
	return items, false
}

func cloneEvent(ev *models.Event) *models.Event {
	cp := *ev
	cp.Programs = slices.Clone(ev.Programs)
	cp.Resources = slices.Clone(ev.Resources)
	cp.Tickets = slices.Clone(ev.Tickets)
	return &cp
}

func project(ev *models.Event, p models.Projection) *models.Event {
	switch p {
	case models.ProjectSummary:
		ev.Programs, ev.Resources = nil, nil
	case models.ProjectPublic:
		ev.Resources, ev.OrganizerID = nil, ""
	case models.ProjectTitle:
		*ev = models.Event{ID: ev.ID, Title: ev.Title}
	}
	return ev
}
