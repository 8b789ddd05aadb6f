package response

import (
	"time"

	"studio_arq/internal/domain/entities"
)

type ArchitectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Discount  float64   `json:"discount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromArchitect(a entities.Architect) ArchitectResponse {
	return ArchitectResponse{
		ID:        a.ID,
		Name:      a.Name,
		Discount:  a.Discount,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccrualResponse reports the outcome of a work-order-created event.
// Credited is false for duplicate deliveries and events without an architect.
type AccrualResponse struct {
	WorkOrderID string             `json:"work_order_id"`
	Credited    bool               `json:"credited"`
	Architect   *ArchitectResponse `json:"architect,omitempty"`
}

func FromAccrual(workOrderID string, credited bool, a entities.Architect) AccrualResponse {
	resp := AccrualResponse{WorkOrderID: workOrderID, Credited: credited}
	if a.ID != "" {
		ar := FromArchitect(a)
		resp.Architect = &ar
	}
	return resp
}
