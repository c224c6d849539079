package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/repository"
)

// CatalogService owns the event lifecycle plus its programs and ticket types.
type CatalogService struct {
	store repository.EventStore
	clock clock.Clock
}

func NewCatalogService(store repository.EventStore, clk clock.Clock) *CatalogService {
	return &CatalogService{store: store, clock: clk}
}

// ---------- lifecycle ----------

func (s *CatalogService) CreateEvent(ctx context.Context, organizerID string, in models.EventInput) (*models.Event, error) {
	if strings.TrimSpace(organizerID) == "" {
		return nil, models.Invalid("organizer_id", "is required")
	}
	if err := checkEventInput(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	ev := &models.Event{
		OrganizerID: organizerID,
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Contact:     in.Contact,
		Visibility:  visibilityOrDefault(in.Visibility),
		Poster:      in.Poster,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
		StartTime:   in.StartTime,
		Programs:    []models.Program{},
		Resources:   []models.Resource{},
		Tickets:     []models.EventTicket{},
		Status:      models.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Insert(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// PublishEvent moves a draft to published. Publishing twice is a no-op.
func (s *CatalogService) PublishEvent(ctx context.Context, eventID string) error {
	return s.transition(ctx, eventID, []models.EventStatus{models.StatusDraft}, models.StatusPublished)
}

// ArchiveEvent retires an event from sale. Archiving twice is a no-op.
func (s *CatalogService) ArchiveEvent(ctx context.Context, eventID string) error {
	return s.transition(ctx, eventID, []models.EventStatus{models.StatusDraft, models.StatusPublished}, models.StatusArchived)
}

func (s *CatalogService) transition(ctx context.Context, eventID string, from []models.EventStatus, to models.EventStatus) error {
	id, err := parseEventID(eventID)
	if err != nil {
		return err
	}
	matched, err := s.store.TransitionStatus(ctx, id, from, to)
	if err != nil {
		return err
	}
	if matched == 1 {
		return nil
	}

	ev, err := s.store.Load(ctx, id, models.ProjectSummary)
	if err != nil {
		return err
	}
	if ev.Status == to {
		return nil
	}
	return fmt.Errorf("%s -> %s: %w", ev.Status, to, models.ErrInvalidTransition)
}

// DeleteEvent drops the event with every nested collection. Issued tickets
// live elsewhere and are left alone.
func (s *CatalogService) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ---------- programs ----------

// ListPrograms orders by date; programs on the same date keep insertion order.
func (s *CatalogService) ListPrograms(ctx context.Context, eventID string) ([]models.Program, error) {
	ev, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(programKind.list(ev))
	slices.SortStableFunc(out, func(a, b models.Program) int { return a.Date.Compare(b.Date) })
	return out, nil
}

func (s *CatalogService) GetProgram(ctx context.Context, eventID, programID string) (models.Program, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return models.Program{}, err
	}
	return programKind.get(ctx, s.store, id, programID)
}

func (s *CatalogService) UpsertProgram(ctx context.Context, eventID string, p models.Program) ([]models.Program, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	return programKind.upsert(ctx, s.store, id, p)
}

func (s *CatalogService) DeleteProgram(ctx context.Context, eventID, programID string) (bool, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	return programKind.remove(ctx, s.store, id, programID)
}

// ---------- ticket types ----------

func (s *CatalogService) ListTicketTypes(ctx context.Context, eventID string) ([]models.EventTicket, error) {
	ev, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ticketKind.list(ev), nil
}

func (s *CatalogService) GetTicketType(ctx context.Context, eventID, ticketID string) (models.EventTicket, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return models.EventTicket{}, err
	}
	return ticketKind.get(ctx, s.store, id, ticketID)
}

// UpsertTicketType keeps the stored sold count; it is only changed by
// IncrementSold and ReleaseSold.
func (s *CatalogService) UpsertTicketType(ctx context.Context, eventID string, t models.EventTicket) ([]models.EventTicket, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	return ticketKind.upsert(ctx, s.store, id, t)
}

func (s *CatalogService) DeleteTicketType(ctx context.Context, eventID, ticketID string) (bool, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	return ticketKind.remove(ctx, s.store, id, ticketID)
}

// IncrementSold takes quantity seats of a ticket type; sold never passes
// the type's quantity.
func (s *CatalogService) IncrementSold(ctx context.Context, eventID, ticketID string, quantity int) (bool, error) {
	return s.moveSold(ctx, eventID, ticketID, quantity, 1)
}

func (s *CatalogService) ReleaseSold(ctx context.Context, eventID, ticketID string, quantity int) (bool, error) {
	return s.moveSold(ctx, eventID, ticketID, quantity, -1)
}

func (s *CatalogService) moveSold(ctx context.Context, eventID, ticketID string, quantity, sign int) (bool, error) {
	if quantity < 1 {
		return false, models.Invalid("quantity", "must be >= 1")
	}
	id, err := parseEventID(eventID)
	if err != nil {
		return false, err
	}
	if err := ticketKind.adjust(ctx, s.store, id, ticketID, sign*quantity); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CatalogService) load(ctx context.Context, eventID string) (*models.Event, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	return s.store.Load(ctx, id, models.ProjectFull)
}

// checkEventInput validates tags and that the event does not end before it starts.
func checkEventInput(in models.EventInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.EndDate.Before(in.StartDate) {
		return models.Invalid("end_date", "must not be before start_date")
	}
	return nil
}

func visibilityOrDefault(v models.Visibility) models.Visibility {
	if v == "" {
		return models.VisibilityPublic
	}
	return v
}
