package models

import "time"

// Resource is capacity-bound equipment or service attached to an event.
// Reserved never exceeds Quantity.
type Resource struct {
	ID         string  `bson:"_id" json:"id"`
	Name       string  `bson:"name" json:"name" validate:"required"`
	Type       string  `bson:"type" json:"type"`
	Quantity   int     `bson:"quantity" json:"quantity" validate:"gte=0"`
	Unit       string  `bson:"unit" json:"unit"`
	IsPublic   bool    `bson:"is_public" json:"is_public"`
	Reserved   int     `bson:"reserved" json:"reserved"`
	Price      float64 `bson:"price" json:"price" validate:"gte=0"`
	SupplierID string  `bson:"supplier_id" json:"supplier_id,omitempty"`
}

type Program struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name" validate:"required"`
	Date        time.Time `bson:"date" json:"date"`
	StartTime   string    `bson:"start_time" json:"start_time"`
	EndTime     string    `bson:"end_time" json:"end_time"`
	Description string    `bson:"description" json:"description"`
}

// EventTicket is a ticket type definition. Sold never exceeds Quantity.
type EventTicket struct {
	ID       string    `bson:"_id" json:"id"`
	Name     string    `bson:"name" json:"name" validate:"required"`
	Price    float64   `bson:"price" json:"price" validate:"gte=0"`
	Quantity int       `bson:"quantity" json:"quantity" validate:"gte=0"`
	Sold     int       `bson:"sold" json:"sold"`
	Date     time.Time `bson:"date" json:"date"`
}

// ArrayField names one of the nested collections of an Event.
type ArrayField string

const (
	ArrayPrograms  ArrayField = "programs"
	ArrayResources ArrayField = "resources"
	ArrayTickets   ArrayField = "tickets"
)

// CounterGuard describes a guarded counter inside an array element:
// Counter + delta must stay within [0, Capacity].
type CounterGuard struct {
	Counter  string
	Capacity string
}

var (
	ReservedGuard = CounterGuard{Counter: "reserved", Capacity: "quantity"}
	SoldGuard     = CounterGuard{Counter: "sold", Capacity: "quantity"}
)
