package request

import "strings"

// TicketStatusRequest is the payload of the attendant's status change.
type TicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r TicketStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
