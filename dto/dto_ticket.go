package dto

import "eventhub-backend/internal/models"

// TicketResponse is an issued ticket with its price including add-on services.
type TicketResponse struct {
	models.IssuedTicket
	Total float64 `json:"total"`
}

func NewTicketResponse(t *models.IssuedTicket) TicketResponse {
	return TicketResponse{IssuedTicket: *t, Total: t.Total()}
}
