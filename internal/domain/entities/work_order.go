package entities

import "time"

// WorkOrderStatus represents the lifecycle of a studio project.

type WorkOrderStatus string

const (
	WorkOrderStatusOpen      WorkOrderStatus = "open"
	WorkOrderStatusDelivered WorkOrderStatus = "delivered"
	WorkOrderStatusCancelled WorkOrderStatus = "cancelled"
)

// ChecklistItem is a single question on a work order's checklist.
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Checklist maps item keys to checklist items. Keys are unique and carry no
// ordering; insertion order is irrelevant.
type Checklist map[string]ChecklistItem

// Clone returns a shallow copy safe to mutate independently.
func (c Checklist) Clone() Checklist {
	out := make(Checklist, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// WorkOrder is a project record (projeto) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The checklist is stored twice: as the canonical attribute map and as a
// serialized JSON snapshot. Both are written in the same UpdateItem call so a
// reader never observes them out of sync.
type WorkOrder struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Status      WorkOrderStatus `json:"status"`
	ArchitectID string          `json:"architect_id,omitempty"`
	Checklist   Checklist       `json:"checklist"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DefaultChecklist returns the checklist seeded into every new work order.
//
// Two entries intentionally carry the same question text: the studio's legacy
// data shipped that way, so the keys stay independent, correctly-tracked
// items rather than being deduplicated here.
func DefaultChecklist() Checklist {
	return Checklist{
		"briefing":          {Text: "Briefing inicial foi concluído?"},
		"medidas":           {Text: "Medidas do ambiente foram conferidas?"},
		"orcamento":         {Text: "Orçamento foi aprovado pelo cliente?"},
		"aprovacao_projeto": {Text: "Cliente aprovou o projeto final?"},
		"entrega":           {Text: "Cliente aprovou o projeto final?"},
	}
}
