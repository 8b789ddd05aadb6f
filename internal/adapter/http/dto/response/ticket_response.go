package response

import (
	"time"

	"studio_arq/internal/domain/entities"
)

type TicketResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		Title:         t.Title,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		ScheduledDate: t.ScheduledDate,
		ScheduledTime: t.ScheduledTime,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTickets(tickets []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}
