package interfaces

import (
	"context"

	"studio_arq/internal/domain/entities"
)

// IArchitectRepository abstracts DynamoDB persistence for Architect.

type IArchitectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Architect, error)
	UpdateDiscount(ctx context.Context, id string, newValue float64) (entities.Architect, error)
}
