package models

// EventRollup is the per-event slice of an organizer's analytics.
type EventRollup struct {
	EventID           string  `json:"event_id"`
	Title             string  `json:"title"`
	TicketRevenue     float64 `json:"ticket_revenue"`
	ResourceRevenue   float64 `json:"resource_revenue"`
	TotalRevenue      float64 `json:"total_revenue"`
	TicketsSold       int     `json:"tickets_sold"`
	ResourcesReserved int     `json:"resources_reserved"`
}

type AnalyticsTotals struct {
	TicketRevenue     float64 `json:"total_ticket_revenue"`
	ResourceRevenue   float64 `json:"total_resource_revenue"`
	Revenue           float64 `json:"total_revenue"`
	TicketsSold       int     `json:"total_tickets_sold"`
	ResourcesReserved int     `json:"total_resources_reserved"`
	EventCount        int     `json:"event_count"`
}

type TicketTypeRank struct {
	EventID      string  `json:"event_id"`
	TicketTypeID string  `json:"ticket_type_id"`
	Name         string  `json:"name"`
	Sold         int     `json:"sold"`
	Price        float64 `json:"price"`
	Revenue      float64 `json:"revenue"`
}

type ResourceRank struct {
	EventID    string  `json:"event_id"`
	ResourceID string  `json:"resource_id"`
	Name       string  `json:"name"`
	SupplierID string  `json:"supplier_id,omitempty"`
	Reserved   int     `json:"reserved"`
	Price      float64 `json:"price"`
	Revenue    float64 `json:"revenue"`
}

// MonthlyRevenue buckets revenue by the YYYY-MM of an event's start date.
type MonthlyRevenue struct {
	Month           string  `json:"month"`
	TicketRevenue   float64 `json:"ticket_revenue"`
	ResourceRevenue float64 `json:"resource_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`
	EventCount      int     `json:"event_count"`
}

type SupplierRevenue struct {
	SupplierID        string  `json:"supplier_id"`
	Revenue           float64 `json:"revenue"`
	ResourcesReserved int     `json:"resources_reserved"`
	ResourceCount     int     `json:"resource_count"`
}

// OrganizerAnalytics is recomputed on every request and never stored.
type OrganizerAnalytics struct {
	OrganizerID        string            `json:"organizer_id"`
	Totals             AnalyticsTotals   `json:"totals"`
	Events             []EventRollup     `json:"events"`
	TopEventsByRevenue []EventRollup     `json:"top_events_by_revenue"`
	TopEventsByTickets []EventRollup     `json:"top_events_by_tickets_sold"`
	TopTicketTypes     []TicketTypeRank  `json:"top_ticket_types"`
	TopResources       []ResourceRank    `json:"top_resources"`
	Monthly            []MonthlyRevenue  `json:"monthly"`
	BySupplier         []SupplierRevenue `json:"by_supplier"`
}
