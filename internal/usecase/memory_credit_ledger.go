package usecase

import (
	"context"
	"sync"

	"studio_arq/internal/usecase/interfaces"
)

// MemoryCreditLedger is a process-local ICreditLedger. It covers duplicate
// delivery within one process lifetime; production wiring uses the DynamoDB
// ledger instead so idempotence survives restarts.
type MemoryCreditLedger struct {
	mu       sync.Mutex
	credited map[string]bool
}

var _ interfaces.ICreditLedger = (*MemoryCreditLedger)(nil)

func NewMemoryCreditLedger() *MemoryCreditLedger {
	return &MemoryCreditLedger{credited: make(map[string]bool)}
}

func (l *MemoryCreditLedger) Credit(_ context.Context, workOrderID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.credited[workOrderID] {
		return false, nil
	}
	l.credited[workOrderID] = true
	return true, nil
}
