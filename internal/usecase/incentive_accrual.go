package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"
)

var ErrArchitectNotFound = errors.New("architect not found")

const (
	// DiscountStep is the accrual per distinct work-order creation, in
	// percentage points.
	DiscountStep = 1.2
	// DiscountCap is the hard ceiling; accrual clamps here silently rather
	// than failing.
	DiscountCap = 20.0
)

// IIncentiveAccrualUseCase credits an architect's discount once per created
// work order.

type IIncentiveAccrualUseCase interface {
	// OnWorkOrderCreated accrues the discount step for architectID. The bool
	// reports whether a credit was applied; duplicate work-order ids and
	// events without an architect return false with no error.
	OnWorkOrderCreated(ctx context.Context, workOrderID, architectID string) (entities.Architect, bool, error)
}

type IncentiveAccrualUseCase struct {
	repo   interfaces.IArchitectRepository
	ledger interfaces.ICreditLedger
}

var _ IIncentiveAccrualUseCase = (*IncentiveAccrualUseCase)(nil)

func NewIncentiveAccrualUseCase(repo interfaces.IArchitectRepository, ledger interfaces.ICreditLedger) *IncentiveAccrualUseCase {
	if ledger == nil {
		ledger = NewMemoryCreditLedger()
	}
	return &IncentiveAccrualUseCase{repo: repo, ledger: ledger}
}

func (u *IncentiveAccrualUseCase) OnWorkOrderCreated(ctx context.Context, workOrderID, architectID string) (entities.Architect, bool, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Architect{}, false, ErrInvalidWorkOrderID
	}
	architectID = strings.TrimSpace(architectID)
	if architectID == "" {
		// Work orders without an architect accrue nothing; not an error.
		return entities.Architect{}, false, nil
	}

	arch, err := u.repo.GetByID(ctx, architectID)
	if err != nil {
		log.Printf("[incentive][usecase] load architect failed architect_id=%s err=%v", architectID, err)
		return entities.Architect{}, false, err
	}
	if arch.ID == "" {
		return entities.Architect{}, false, ErrArchitectNotFound
	}

	credited, err := u.ledger.Credit(ctx, workOrderID)
	if err != nil {
		log.Printf("[incentive][usecase] ledger credit failed work_order_id=%s err=%v", workOrderID, err)
		return entities.Architect{}, false, err
	}
	if !credited {
		log.Printf("[incentive][usecase] duplicate event ignored work_order_id=%s architect_id=%s", workOrderID, architectID)
		return arch, false, nil
	}

	newValue := NextDiscount(arch.Discount)
	updated, err := u.repo.UpdateDiscount(ctx, architectID, newValue)
	if err != nil {
		// The work-order creation stands; the missed credit is a reconcilable
		// inconsistency, not a rollback.
		log.Printf("[incentive][usecase] discount persist failed architect_id=%s work_order_id=%s value=%.2f err=%v",
			architectID, workOrderID, newValue, err)
		return arch, true, err
	}
	log.Printf("[incentive][usecase] discount accrued architect_id=%s work_order_id=%s discount=%.2f", architectID, workOrderID, updated.Discount)
	return updated, true, nil
}

// NextDiscount returns the discount after one accrual step, clamped at the
// cap. Calling it on an already-capped value returns the cap unchanged, so
// retries and duplicate deliveries can never push past it.
func NextDiscount(current float64) float64 {
	next := current + DiscountStep
	if next > DiscountCap {
		return DiscountCap
	}
	return next
}
