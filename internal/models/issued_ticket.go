package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AddOnService struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"gte=1"`
	Price    float64 `bson:"price" json:"price" validate:"gte=0"`
}

// IssuedTicket is sold to a user. It references the event but is not owned
// by it, so deleting the event leaves issued tickets in place.
type IssuedTicket struct {
	ID           bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       string         `bson:"user_id" json:"user_id"`
	EventID      bson.ObjectID  `bson:"event_id" json:"event_id"`
	TicketTypeID string         `bson:"ticket_type_id" json:"ticket_type_id"`
	Name         string         `bson:"name" json:"name"`
	Price        float64        `bson:"price" json:"price"`
	Quantity     int            `bson:"quantity" json:"quantity"`
	Date         time.Time      `bson:"date" json:"date"`
	QR           string         `bson:"qr" json:"qr"`
	IsScanned    bool           `bson:"is_scanned" json:"is_scanned"`
	ScannedAt    *time.Time     `bson:"scanned_at,omitempty" json:"scanned_at,omitempty"`
	Services     []AddOnService `bson:"services" json:"services"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
}

func (t IssuedTicket) Total() float64 {
	total := t.Price * float64(t.Quantity)
	for _, s := range t.Services {
		total += s.Price * float64(s.Quantity)
	}
	return total
}
