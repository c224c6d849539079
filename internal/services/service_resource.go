package services

import (
	"context"

	"eventhub-backend/internal/models"
	"eventhub-backend/internal/repository"
)

// ResourceService manages the capacity-bound resources of an event.
type ResourceService struct {
	store repository.EventStore
}

func NewResourceService(store repository.EventStore) *ResourceService {
	return &ResourceService{store: store}
}

// ListAll pages through every resource of the event. Pages start at 1.
func (s *ResourceService) ListAll(ctx context.Context, eventID string, page, pageSize int) (models.PagedResult[models.Resource], error) {
	var out models.PagedResult[models.Resource]
	if err := checkPage(page, pageSize, 1); err != nil {
		return out, err
	}
	id, err := parseEventID(eventID)
	if err != nil {
		return out, err
	}
	ev, err := s.store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return out, err
	}

	all := resourceKind.list(ev)
	items := []models.Resource{}
	if start := (page - 1) * pageSize; start < len(all) {
		items = append(items, all[start:min(start+pageSize, len(all))]...)
	}
	return models.PagedResult[models.Resource]{
		Items:      items,
		TotalCount: int64(len(all)),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// ListPublic returns only resources flagged public, in stored order.
func (s *ResourceService) ListPublic(ctx context.Context, eventID string) ([]models.Resource, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	ev, err := s.store.Load(ctx, id, models.ProjectFull)
	if err != nil {
		return nil, err
	}
	out := []models.Resource{}
	for _, r := range ev.Resources {
		if r.IsPublic {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ResourceService) GetByID(ctx context.Context, eventID, resourceID string) (models.Resource, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return models.Resource{}, err
	}
	return resourceKind.get(ctx, s.store, id, resourceID)
}

// Upsert creates the resource when r.ID is empty and replaces it otherwise.
// The reserved counter is owned by the reservation path and never taken
// from input.
func (s *ResourceService) Upsert(ctx context.Context, eventID string, r models.Resource) ([]models.Resource, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	return resourceKind.upsert(ctx, s.store, id, r)
}

func (s *ResourceService) Delete(ctx context.Context, eventID, resourceID string) (bool, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	return resourceKind.remove(ctx, s.store, id, resourceID)
}

// IncrementReserved reserves quantity units. It never lets reserved pass
// the resource's quantity, no matter how many callers race.
func (s *ResourceService) IncrementReserved(ctx context.Context, eventID, resourceID string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, models.Invalid("quantity", "must be >= 1")
	}
	return s.move(ctx, eventID, resourceID, quantity)
}

// ReleaseReserved returns quantity units held by an earlier reservation.
func (s *ResourceService) ReleaseReserved(ctx context.Context, eventID, resourceID string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, models.Invalid("quantity", "must be >= 1")
	}
	return s.move(ctx, eventID, resourceID, -quantity)
}

func (s *ResourceService) move(ctx context.Context, eventID, resourceID string, delta int) (bool, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	if err := resourceKind.adjust(ctx, s.store, id, resourceID, delta); err != nil {
		return false, err
	}
	return true, nil
}
