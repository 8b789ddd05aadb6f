package interfaces

import (
	"context"

	"studio_arq/internal/domain/entities"
)

// IOrderedItemRepository abstracts DynamoDB persistence for reorderable
// groups.
//
// WriteOrderBatch is best-effort, not transactional: each (id, index) write
// is issued independently and reported in the returned outcome list. The
// error return is reserved for whole-batch failures; per-id failures live in
// the outcomes.

type IOrderedItemRepository interface {
	ReadGroup(ctx context.Context, groupKey string) ([]entities.OrderedItem, error)
	WriteOrderBatch(ctx context.Context, groupKey string, writes []entities.OrderWrite) ([]entities.OrderWriteOutcome, error)
}
