package entities

import "time"

// TicketStatus represents the lifecycle of a customer-service ticket.
//
// Domain notes:
//   - Status is settable by the attendant at any time; there is no enforced
//     transition graph.
//   - Triage ordering only distinguishes "pending" from everything else.

type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusCompleted  TicketStatus = "completed"
	TicketStatusCancelled  TicketStatus = "cancelled"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusCompleted, TicketStatusCancelled:
		return true
	}
	return false
}

// Ticket is a customer-service record (atendimento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Scheduling is optional. ScheduledDate carries the calendar day only;
// ScheduledTime carries the time of day and is meaningful only together with
// ScheduledDate. A ticket without a ScheduledTime can never be urgent.
type Ticket struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Status        TicketStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	ScheduledDate *time.Time   `json:"scheduled_date,omitempty"`
	ScheduledTime *time.Time   `json:"scheduled_time,omitempty"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ScheduledAt combines ScheduledDate and ScheduledTime into the concrete
// instant the visit is booked for. Returns false when either half is missing.
func (t Ticket) ScheduledAt() (time.Time, bool) {
	if t.ScheduledDate == nil || t.ScheduledTime == nil {
		return time.Time{}, false
	}
	d := *t.ScheduledDate
	h := *t.ScheduledTime
	at := time.Date(d.Year(), d.Month(), d.Day(), h.Hour(), h.Minute(), h.Second(), 0, d.Location())
	return at, true
}
