package interfaces

import "context"

// ICreditLedger records which work orders already produced a discount
// credit, making accrual idempotent under duplicate event delivery.

type ICreditLedger interface {
	// Credit marks workOrderID as credited. It returns false when the id was
	// already credited; in that case nothing was written.
	Credit(ctx context.Context, workOrderID string) (bool, error)
}
