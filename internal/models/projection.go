package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Projection selects how much of an Event document a read returns.
type Projection int

const (
	ProjectFull Projection = iota
	// ProjectSummary drops programs and resources; ticket types are kept
	// for counts and the public ticket listing.
	ProjectSummary
	// ProjectPublic drops organizer-private fields and the resources array.
	ProjectPublic
	ProjectTitle
)

type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

type EventSummary struct {
	ID              bson.ObjectID `json:"id"`
	OrganizerID     string        `json:"organizer_id"`
	Title           string        `json:"title"`
	Type            string        `json:"type"`
	Visibility      Visibility    `json:"visibility"`
	Status          EventStatus   `json:"status"`
	Poster          string        `json:"poster,omitempty"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	StartTime       string        `json:"start_time,omitempty"`
	TicketTypeCount int           `json:"ticket_type_count"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type PublicTicketType struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
	Date    time.Time `json:"date"`
	SoldOut bool      `json:"sold_out"`
}

type PublicEventSummary struct {
	ID        bson.ObjectID      `json:"id"`
	Title     string             `json:"title"`
	Type      string             `json:"type"`
	Contact   string             `json:"contact"`
	Poster    string             `json:"poster,omitempty"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	StartTime string             `json:"start_time,omitempty"`
	Tickets   []PublicTicketType `json:"tickets"`
}

type PublicEvent struct {
	PublicEventSummary
	Description string    `json:"description"`
	Programs    []Program `json:"programs"`
}

type EventTitle struct {
	ID    bson.ObjectID `json:"id"`
	Title string        `json:"title"`
}

func (e *Event) Summary() EventSummary {
	return EventSummary{
		ID:              e.ID,
		OrganizerID:     e.OrganizerID,
		Title:           e.Title,
		Type:            e.Type,
		Visibility:      e.Visibility,
		Status:          e.Status,
		Poster:          e.Poster,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		StartTime:       e.StartTime,
		TicketTypeCount: len(e.Tickets),
		UpdatedAt:       e.UpdatedAt,
	}
}

func (e *Event) PublicSummary() PublicEventSummary {
	tickets := make([]PublicTicketType, 0, len(e.Tickets))
	for _, t := range e.Tickets {
		tickets = append(tickets, PublicTicketType{
			ID:      t.ID,
			Name:    t.Name,
			Price:   t.Price,
			Date:    t.Date,
			SoldOut: t.Sold >= t.Quantity,
		})
	}
	return PublicEventSummary{
		ID:        e.ID,
		Title:     e.Title,
		Type:      e.Type,
		Contact:   e.Contact,
		Poster:    e.Poster,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		StartTime: e.StartTime,
		Tickets:   tickets,
	}
}

func (e *Event) Public() PublicEvent {
	programs := e.Programs
	if programs == nil {
		programs = []Program{}
	}
	return PublicEvent{
		PublicEventSummary: e.PublicSummary(),
		Description:        e.Description,
		Programs:           programs,
	}
}

// IsPubliclyVisible is true for public events that have been published.
func (e *Event) IsPubliclyVisible() bool {
	return e.Visibility == VisibilityPublic && e.Status == StatusPublished
}
