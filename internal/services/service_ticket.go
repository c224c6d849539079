package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/logger"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/qrpayload"
	"eventhub-backend/internal/repository"
)

type IssueInput struct {
	UserID       string                `json:"user_id" validate:"required"`
	EventID      string                `json:"event_id" validate:"required"`
	TicketTypeID string                `json:"ticket_type_id" validate:"required"`
	Quantity     int                   `json:"quantity" validate:"gte=1"`
	Services     []models.AddOnService `json:"services" validate:"dive"`
}

// TicketService sells tickets against an event's ticket types and checks
// them in at the door.
type TicketService struct {
	events  repository.EventStore
	tickets repository.TicketStore
	encoder qrpayload.Encoder
	clock   clock.Clock
}

func NewTicketService(events repository.EventStore, tickets repository.TicketStore, enc qrpayload.Encoder, clk clock.Clock) *TicketService {
	return &TicketService{events: events, tickets: tickets, encoder: enc, clock: clk}
}

// Issue takes the seats first and only then writes the ticket. Any failure
// after the seats are taken gives them back.
func (s *TicketService) Issue(ctx context.Context, in IssueInput) (*models.IssuedTicket, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	eventID, err := parseEventID(in.EventID)
	if err != nil {
		return nil, err
	}

	ev, err := s.events.Load(ctx, eventID, models.ProjectSummary)
	if err != nil {
		return nil, err
	}
	if ev.Status != models.StatusPublished {
		return nil, fmt.Errorf("event is %s: %w", ev.Status, models.ErrInvalidTransition)
	}
	tt, ok := ticketKind.find(ev, in.TicketTypeID)
	if !ok {
		return nil, models.ErrTicketTypeNotFound
	}

	if err := ticketKind.adjust(ctx, s.events, eventID, tt.ID, in.Quantity); err != nil {
		return nil, err
	}

	services := in.Services
	if services == nil {
		services = []models.AddOnService{}
	}
	t := &models.IssuedTicket{
		ID:           bson.NewObjectID(),
		UserID:       in.UserID,
		EventID:      eventID,
		TicketTypeID: tt.ID,
		Name:         tt.Name,
		Price:        tt.Price,
		Quantity:     in.Quantity,
		Date:         tt.Date,
		Services:     services,
		CreatedAt:    s.clock.Now(),
	}

	if t.QR, err = s.encoder.Encode(t.ID.Hex()); err != nil {
		s.release(ctx, eventID, tt.ID, in.Quantity)
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	if err := s.tickets.Insert(ctx, t); err != nil {
		s.release(ctx, eventID, tt.ID, in.Quantity)
		return nil, err
	}
	return t, nil
}

func (s *TicketService) release(ctx context.Context, eventID bson.ObjectID, ticketTypeID string, quantity int) {
	// The caller's context may be what failed; the release still has to go out.
	ctx = context.WithoutCancel(ctx)
	if err := ticketKind.adjust(ctx, s.events, eventID, ticketTypeID, -quantity); err != nil {
		logger.Log.Error("release sold seats",
			"event_id", eventID.Hex(),
			"ticket_type_id", ticketTypeID,
			"quantity", quantity,
			"err", err,
		)
	}
}

// Scan checks a ticket in. It succeeds once; later scans report
// ErrAlreadyScanned.
func (s *TicketService) Scan(ctx context.Context, ticketID string) (*models.IssuedTicket, error) {
	id, err := parseID("ticket_id", ticketID)
	if err != nil {
		return nil, err
	}
	return s.scan(ctx, id)
}

// ScanPayload checks in the ticket a QR payload points at.
func (s *TicketService) ScanPayload(ctx context.Context, payload string) (*models.IssuedTicket, error) {
	t, err := s.ResolvePayload(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.scan(ctx, t.ID)
}

func (s *TicketService) scan(ctx context.Context, id bson.ObjectID) (*models.IssuedTicket, error) {
	matched, err := s.tickets.MarkScanned(ctx, id, s.clock.Now())
	if err != nil {
		return nil, err
	}
	t, err := s.tickets.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return t, models.ErrAlreadyScanned
	}
	return t, nil
}

// ResolvePayload opens a QR payload and loads the ticket it names.
func (s *TicketService) ResolvePayload(ctx context.Context, payload string) (*models.IssuedTicket, error) {
	hex, err := s.encoder.Decode(payload)
	if err != nil {
		if errors.Is(err, qrpayload.ErrInvalidPayload) {
			return nil, models.Invalid("qr", "is not a valid ticket payload")
		}
		return nil, err
	}
	id, err := parseID("qr", hex)
	if err != nil {
		return nil, err
	}
	return s.tickets.Load(ctx, id)
}

func (s *TicketService) Get(ctx context.Context, ticketID string) (*models.IssuedTicket, error) {
	id, err := parseID("ticket_id", ticketID)
	if err != nil {
		return nil, err
	}
	return s.tickets.Load(ctx, id)
}

// ListByUser pages a user's tickets, newest first. Pages start at 0.
func (s *TicketService) ListByUser(ctx context.Context, userID string, page, pageSize int) (models.PagedResult[models.IssuedTicket], error) {
	if userID == "" {
		return models.PagedResult[models.IssuedTicket]{}, models.Invalid("user_id", "is required")
	}
	return s.list(ctx, repository.TicketFilter{UserID: userID}, page, pageSize)
}

func (s *TicketService) ListByEvent(ctx context.Context, eventID string, page, pageSize int) (models.PagedResult[models.IssuedTicket], error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return models.PagedResult[models.IssuedTicket]{}, err
	}
	return s.list(ctx, repository.TicketFilter{EventID: id}, page, pageSize)
}

func (s *TicketService) list(ctx context.Context, f repository.TicketFilter, page, pageSize int) (models.PagedResult[models.IssuedTicket], error) {
	out := models.PagedResult[models.IssuedTicket]{Items: []models.IssuedTicket{}, Page: page, PageSize: pageSize}
	if err := checkPage(page, pageSize, 0); err != nil {
		return out, err
	}
	total, err := s.tickets.Count(ctx, f)
	if err != nil {
		return out, err
	}
	out.TotalCount = total
	items, err := s.tickets.Find(ctx, f, int64(page)*int64(pageSize), int64(pageSize))
	if err != nil {
		return out, err
	}
	out.Items = items
	return out, nil
}
