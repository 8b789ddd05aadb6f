package request

import "strings"

// WorkOrderRequest creates a new project. ArchitectID is optional; when
// present the creation event accrues the architect's referral discount.
type WorkOrderRequest struct {
	Title       string `json:"title" binding:"required"`
	ArchitectID string `json:"architect_id"`
}

func (r WorkOrderRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

func (r WorkOrderRequest) ResolveArchitectID() string {
	return strings.TrimSpace(r.ArchitectID)
}

// WorkOrderCreatedEventRequest replays a creation event into the incentive
// accrual, e.g. from an upstream form service retrying delivery. Duplicate
// work_order_id values are credited at most once.
type WorkOrderCreatedEventRequest struct {
	WorkOrderID string `json:"work_order_id" binding:"required"`
	ArchitectID string `json:"architect_id"`
}

func (r WorkOrderCreatedEventRequest) ResolveWorkOrderID() string {
	return strings.TrimSpace(r.WorkOrderID)
}

func (r WorkOrderCreatedEventRequest) ResolveArchitectID() string {
	return strings.TrimSpace(r.ArchitectID)
}
