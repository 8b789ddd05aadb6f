package interfaces

import (
	"context"

	"studio_arq/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for Ticket.
//
// Triage ordering itself is computed in the use case; the repository only
// reads ticket state and writes status changes.

type ITicketRepository interface {
	List(ctx context.Context) ([]entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error)
}
