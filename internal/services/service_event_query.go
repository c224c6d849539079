package services

import (
	"context"
	"strings"
	"time"

	"eventhub-backend/internal/models"
	"eventhub-backend/internal/repository"
)

// EventQueryService serves the read side plus the scalar patch.
type EventQueryService struct {
	store repository.EventStore
}

func NewEventQueryService(store repository.EventStore) *EventQueryService {
	return &EventQueryService{store: store}
}

var publicFilter = repository.EventFilter{
	Visibility: models.VisibilityPublic,
	Status:     models.StatusPublished,
}

// GetPage lists summaries ordered by start date. Pages start at 0.
func (s *EventQueryService) GetPage(ctx context.Context, q models.EventQuery, page, pageSize int) (models.PagedResult[models.EventSummary], error) {
	f := repository.EventFilter{OrganizerID: q.OrganizerID, Type: q.Category}
	return pageOf(ctx, s.store, f, models.ProjectSummary, page, pageSize, (*models.Event).Summary)
}

// GetPublicPage lists only public, published events.
func (s *EventQueryService) GetPublicPage(ctx context.Context, page, pageSize int) (models.PagedResult[models.PublicEventSummary], error) {
	return pageOf(ctx, s.store, publicFilter, models.ProjectPublic, page, pageSize, (*models.Event).PublicSummary)
}

func pageOf[T any](ctx context.Context, store repository.EventStore, f repository.EventFilter, proj models.Projection, page, pageSize int, conv func(*models.Event) T) (models.PagedResult[T], error) {
	out := models.PagedResult[T]{Items: []T{}, Page: page, PageSize: pageSize}
	if err := checkPage(page, pageSize, 0); err != nil {
		return out, err
	}

	total, err := store.Count(ctx, f)
	if err != nil {
		return out, err
	}
	out.TotalCount = total

	skip := int64(page) * int64(pageSize)
	if skip >= total {
		return out, nil
	}
	events, err := store.Find(ctx, f, proj, skip, int64(pageSize))
	if err != nil {
		return out, err
	}
	for i := range events {
		out.Items = append(out.Items, conv(&events[i]))
	}
	return out, nil
}

// GetByDateRange returns public events whose [start, end] overlaps the
// window, both ends inclusive.
func (s *EventQueryService) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.PublicEventSummary, error) {
	if start.IsZero() {
		return nil, models.Invalid("start", "is required")
	}
	if end.IsZero() {
		return nil, models.Invalid("end", "is required")
	}
	if start.After(end) {
		return nil, models.Invalid("start", "must not be after end")
	}

	f := publicFilter
	f.OverlapStart, f.OverlapEnd = start, end
	events, err := s.store.Find(ctx, f, models.ProjectPublic, 0, 0)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicEventSummary, 0, len(events))
	for i := range events {
		out = append(out, events[i].PublicSummary())
	}
	return out, nil
}

func (s *EventQueryService) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	return s.store.Load(ctx, id, models.ProjectFull)
}

// GetPublicByID hides drafts, archived and private events behind NotFound.
func (s *EventQueryService) GetPublicByID(ctx context.Context, eventID string) (models.PublicEvent, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return models.PublicEvent{}, err
	}
	ev, err := s.store.Load(ctx, id, models.ProjectPublic)
	if err != nil {
		return models.PublicEvent{}, err
	}
	if !ev.IsPubliclyVisible() {
		return models.PublicEvent{}, models.ErrEventNotFound
	}
	return ev.Public(), nil
}

func (s *EventQueryService) GetTitleOnly(ctx context.Context, eventID string) (models.EventTitle, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return models.EventTitle{}, err
	}
	ev, err := s.store.Load(ctx, id, models.ProjectTitle)
	if err != nil {
		return models.EventTitle{}, err
	}
	return models.EventTitle{ID: ev.ID, Title: ev.Title}, nil
}

// Update overwrites every scalar field in one write. Owner, status and the
// nested collections are out of its reach.
func (s *EventQueryService) Update(ctx context.Context, eventID string, patch models.EventPatch) (bool, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	if err := checkEventInput(models.EventInput(patch)); err != nil {
		return false, err
	}

	matched, err := s.store.ApplyFieldUpdate(ctx, id, repository.FieldUpdate{
		repository.FieldTitle:       patch.Title,
		repository.FieldDescription: patch.Description,
		repository.FieldType:        patch.Type,
		repository.FieldContact:     patch.Contact,
		repository.FieldVisibility:  visibilityOrDefault(patch.Visibility),
		repository.FieldPoster:      patch.Poster,
		repository.FieldStartDate:   patch.StartDate.UTC(),
		repository.FieldEndDate:     patch.EndDate.UTC(),
		repository.FieldStartTime:   patch.StartTime,
	})
	if err != nil {
		return false, err
	}
	if matched == 0 {
		return false, models.ErrEventNotFound
	}
	return true, nil
}

// ListForOrganizer is the unpaged scan analytics runs on. w bounds the
// start date as [From, To); nil means every event.
func (s *EventQueryService) ListForOrganizer(ctx context.Context, organizerID string, w *models.Window) ([]models.Event, error) {
	if strings.TrimSpace(organizerID) == "" {
		return nil, models.Invalid("organizer_id", "is required")
	}
	f := repository.EventFilter{OrganizerID: organizerID}
	if w != nil {
		if !w.From.IsZero() && !w.To.IsZero() && !w.From.Before(w.To) {
			return nil, models.Invalid("from", "must be before to")
		}
		f.StartFrom, f.StartBefore = w.From, w.To
	}
	return s.store.Find(ctx, f, models.ProjectFull, 0, 0)
}

// OwnerOf returns the organizer id of an event, for authorization checks.
func (s *EventQueryService) OwnerOf(ctx context.Context, eventID string) (string, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return "", err
	}
	ev, err := s.store.Load(ctx, id, models.ProjectSummary)
	if err != nil {
		return "", err
	}
	return ev.OrganizerID, nil
}
