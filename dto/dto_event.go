package dto

import (
	"time"

	"eventhub-backend/internal/models"
)

// EventResponse is the full organizer view of an event.
type EventResponse struct {
	ID          string               `json:"id"`
	OrganizerID string               `json:"organizer_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Type        string               `json:"type"`
	Contact     string               `json:"contact"`
	Visibility  models.Visibility    `json:"visibility"`
	Poster      string               `json:"poster,omitempty"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	StartTime   string               `json:"start_time,omitempty"`
	Programs    []models.Program     `json:"programs"`
	Resources   []models.Resource    `json:"resources"`
	Tickets     []models.EventTicket `json:"tickets"`
	Status      models.EventStatus   `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func NewEventResponse(ev *models.Event) EventResponse {
	return EventResponse{
		ID:          ev.ID.Hex(),
		OrganizerID: ev.OrganizerID,
		Title:       ev.Title,
		Description: ev.Description,
		Type:        ev.Type,
		Contact:     ev.Contact,
		Visibility:  ev.Visibility,
		Poster:      ev.Poster,
		StartDate:   ev.StartDate,
		EndDate:     ev.EndDate,
		StartTime:   ev.StartTime,
		Programs:    nonNil(ev.Programs),
		Resources:   nonNil(ev.Resources),
		Tickets:     nonNil(ev.Tickets),
		Status:      ev.Status,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
}

// QuantityRequest carries the units to reserve, release or sell.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ScanRequest struct {
	Payload string `json:"payload"`
}

type IssueTicketRequest struct {
	EventID      string                `json:"event_id"`
	TicketTypeID string                `json:"ticket_type_id"`
	Quantity     int                   `json:"quantity"`
	Services     []models.AddOnService `json:"services"`
	// UserID is honoured for admins only; everyone else buys for themselves.
	UserID string `json:"user_id,omitempty"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
