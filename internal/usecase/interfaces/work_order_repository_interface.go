package interfaces

import (
	"context"

	"studio_arq/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Create and UpdateChecklist take the serialized checklist snapshot alongside
// the canonical map and must write both in a single call, so readers never
// observe one without the other.

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder, snapshot string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdateChecklist(ctx context.Context, id string, checklist entities.Checklist, snapshot string) (entities.WorkOrder, error)
}
