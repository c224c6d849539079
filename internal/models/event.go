package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusArchived  EventStatus = "archived"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Event is the root aggregate. Programs, resources and ticket types live
// inside the same document and are only changed by element id.
type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizerID string        `bson:"organizer_id" json:"organizer_id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Type        string        `bson:"type" json:"type"`
	Contact     string        `bson:"contact" json:"contact"`
	Visibility  Visibility    `bson:"visibility" json:"visibility"`
	Poster      string        `bson:"poster,omitempty" json:"poster,omitempty"`

	StartDate time.Time `bson:"start_date" json:"start_date"`
	EndDate   time.Time `bson:"end_date" json:"end_date"`
	StartTime string    `bson:"start_time,omitempty" json:"start_time,omitempty"`

	Programs  []Program     `bson:"programs" json:"programs"`
	Resources []Resource    `bson:"resources" json:"resources"`
	Tickets   []EventTicket `bson:"tickets" json:"tickets"`

	Status    EventStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}

// EventInput carries the scalar fields an organizer supplies on create.
type EventInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"required"`
	Contact     string     `json:"contact"`
	Visibility  Visibility `json:"visibility" validate:"omitempty,oneof=public private"`
	Poster      string     `json:"poster"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     time.Time  `json:"end_date" validate:"required"`
	StartTime   string     `json:"start_time" validate:"omitempty,len=5"`
}

// EventPatch replaces every scalar field of an event. Identity, owner,
// status and the nested collections are never part of it.
type EventPatch EventInput

// EventQuery holds the optional AND-composed filters of a paged listing.
type EventQuery struct {
	OrganizerID string
	Category    string
}

// Window is a half-open [From, To) range over an event's start date.
// A zero bound means unbounded on that side.
type Window struct {
	From time.Time
	To   time.Time
}

func (w *Window) Contains(t time.Time) bool {
	if w == nil {
		return true
	}
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}
