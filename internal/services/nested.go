package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
	"eventhub-backend/internal/repository"
)

// nestedKind describes how one of an event's element arrays is addressed.
type nestedKind[T any] struct {
	field    models.ArrayField
	notFound error
	items    func(*models.Event) []T
	idOf     func(T) string
	setID    func(*T, string)

	// counter guards the element against losing units already handed out.
	// reset zeroes it on new elements, keep carries the stored value over
	// and rejects a capacity below it.
	counter *models.CounterGuard
	reset   func(*T)
	keep    func(stored T, next *T) error
}

var resourceKind = nestedKind[models.Resource]{
	field:    models.ArrayResources,
	notFound: models.ErrResourceNotFound,
	items:    func(ev *models.Event) []models.Resource { return ev.Resources },
	idOf:     func(r models.Resource) string { return r.ID },
	setID:    func(r *models.Resource, id string) { r.ID = id },
	counter:  &models.ReservedGuard,
	reset:    func(r *models.Resource) { r.Reserved = 0 },
	keep: func(stored models.Resource, next *models.Resource) error {
		next.Reserved = stored.Reserved
		if next.Quantity < next.Reserved {
			return models.Invalid("quantity", fmt.Sprintf("must not be below reserved (%d)", next.Reserved))
		}
		return nil
	},
}

var programKind = nestedKind[models.Program]{
	field:    models.ArrayPrograms,
	notFound: models.ErrProgramNotFound,
	items:    func(ev *models.Event) []models.Program { return ev.Programs },
	idOf:     func(p models.Program) string { return p.ID },
	setID:    func(p *models.Program, id string) { p.ID = id },
}

var ticketKind = nestedKind[models.EventTicket]{
	field:    models.ArrayTickets,
	notFound: models.ErrTicketTypeNotFound,
	items:    func(ev *models.Event) []models.EventTicket { return ev.Tickets },
	idOf:     func(t models.EventTicket) string { return t.ID },
	setID:    func(t *models.EventTicket, id string) { t.ID = id },
	counter:  &models.SoldGuard,
	reset:    func(t *models.EventTicket) { t.Sold = 0 },
	keep: func(stored models.EventTicket, next *models.EventTicket) error {
		next.Sold = stored.Sold
		if next.Quantity < next.Sold {
			return models.Invalid("quantity", fmt.Sprintf("must not be below sold (%d)", next.Sold))
		}
		return nil
	},
}

func (k nestedKind[T]) find(ev *models.Event, id string) (T, bool) {
	for _, it := range k.items(ev) {
		if k.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (k nestedKind[T]) list(ev *models.Event) []T {
	items := k.items(ev)
	if items == nil {
		return []T{}
	}
	return items
}

func (k nestedKind[T]) get(ctx context.Context, store repository.EventStore, id bson.ObjectID, elemID string) (T, error) {
	var zero T
	ev, err := store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return zero, err
	}
	it, ok := k.find(ev, elemID)
	if !ok {
		return zero, k.notFound
	}
	return it, nil
}

// upsert appends elem when it has no id and replaces the stored element
// otherwise. It returns the collection as stored after the write.
func (k nestedKind[T]) upsert(ctx context.Context, store repository.EventStore, id bson.ObjectID, elem T) ([]T, error) {
	if err := validateStruct(elem); err != nil {
		return nil, err
	}

	if elemID := k.idOf(elem); elemID == "" {
		k.setID(&elem, newSubID())
		if k.reset != nil {
			k.reset(&elem)
		}
		matched, err := store.PushArrayElement(ctx, id, k.field, elem)
		if err != nil {
			return nil, err
		}
		if matched == 0 {
			return nil, models.ErrEventNotFound
		}
	} else if err := k.replace(ctx, store, id, elemID, elem); err != nil {
		return nil, err
	}

	ev, err := store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return nil, err
	}
	return k.list(ev), nil
}

func (k nestedKind[T]) replace(ctx context.Context, store repository.EventStore, id bson.ObjectID, elemID string, elem T) error {
	ev, err := store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return err
	}
	stored, ok := k.find(ev, elemID)
	if !ok {
		return k.notFound
	}
	if k.keep != nil {
		if err := k.keep(stored, &elem); err != nil {
			return err
		}
	}

	matched, err := store.ApplyArrayElementUpdate(ctx, id, k.field, elemID, elem, k.counter)
	if err != nil {
		return err
	}
	if matched == 1 {
		return nil
	}

	// Lost a race: the element went away or its counter moved past the
	// new capacity between the read and the write.
	ev, err = store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return err
	}
	if stored, ok = k.find(ev, elemID); !ok {
		return k.notFound
	}
	if k.keep != nil {
		if err := k.keep(stored, &elem); err != nil {
			return err
		}
	}
	return models.ErrCapacityExceeded
}

// remove reports false when the event exists but holds no such element.
func (k nestedKind[T]) remove(ctx context.Context, store repository.EventStore, id bson.ObjectID, elemID string) (bool, error) {
	matched, err := store.PullArrayElement(ctx, id, k.field, elemID)
	if err != nil {
		return false, err
	}
	if matched == 1 {
		return true, nil
	}
	if _, err := store.Load(ctx, id, models.ProjectTitle); err != nil {
		return false, err
	}
	return false, nil
}

// adjust moves the element's guarded counter by delta in one conditional
// write. On a miss it reads the event back to tell a missing event or
// element apart from a guard refusal.
func (k nestedKind[T]) adjust(ctx context.Context, store repository.EventStore, id bson.ObjectID, elemID string, delta int) error {
	matched, err := store.ApplyAtomicIncrement(ctx, id, k.field, elemID, delta, *k.counter)
	if err != nil {
		return err
	}
	if matched == 1 {
		return nil
	}

	ev, err := store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return err
	}
	if _, ok := k.find(ev, elemID); !ok {
		return k.notFound
	}
	if delta > 0 {
		return models.ErrCapacityExceeded
	}
	return models.Invalid("quantity", "exceeds the units currently held")
}
