package response

import (
	"math"
	"time"

	"studio_arq/internal/domain/entities"
)

type ChecklistItemResponse struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type WorkOrderResponse struct {
	ID              string                           `json:"id"`
	Title           string                           `json:"title"`
	Status          string                           `json:"status"`
	ArchitectID     string                           `json:"architect_id,omitempty"`
	Checklist       map[string]ChecklistItemResponse `json:"checklist"`
	PercentComplete float64                          `json:"percent_complete"`
	CreatedAt       time.Time                        `json:"created_at"`
	UpdatedAt       time.Time                        `json:"updated_at"`
}

// FromWorkOrder renders a work order with its completion metric. The stored
// percentage is unrounded; rounding to two decimals happens only here, at the
// display edge.
func FromWorkOrder(wo entities.WorkOrder, percentComplete float64) WorkOrderResponse {
	items := make(map[string]ChecklistItemResponse, len(wo.Checklist))
	for k, v := range wo.Checklist {
		items[k] = ChecklistItemResponse{Text: v.Text, Done: v.Done}
	}
	return WorkOrderResponse{
		ID:              wo.ID,
		Title:           wo.Title,
		Status:          string(wo.Status),
		ArchitectID:     wo.ArchitectID,
		Checklist:       items,
		PercentComplete: math.Round(percentComplete*100) / 100,
		CreatedAt:       wo.CreatedAt,
		UpdatedAt:       wo.UpdatedAt,
	}
}
