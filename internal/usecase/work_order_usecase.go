package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"
)

var ErrInvalidWorkOrderTitle = errors.New("invalid work order title")

// IWorkOrderUseCase creates and reads work orders. Creation is the only code
// path allowed to fire the incentive accrual; edits never do.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, title, architectID string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo      interfaces.IWorkOrderRepository
	clock     interfaces.IClock
	incentive IIncentiveAccrualUseCase
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, clock interfaces.IClock, incentive IIncentiveAccrualUseCase) *WorkOrderUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &WorkOrderUseCase{repo: repo, clock: clock, incentive: incentive}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, title, architectID string) (entities.WorkOrder, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderTitle
	}
	architectID = strings.TrimSpace(architectID)

	now := u.clock.Now()
	wo := entities.WorkOrder{
		ID:          uuid.NewString(),
		Title:       title,
		Status:      entities.WorkOrderStatusOpen,
		ArchitectID: architectID,
		Checklist:   entities.DefaultChecklist(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	snapshot, err := ChecklistSnapshot(wo.Checklist)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	created, err := u.repo.Create(ctx, wo, snapshot)
	if err != nil {
		log.Printf("[workorder][usecase] create failed title=%q err=%v", title, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[workorder][usecase] created work_order_id=%s architect_id=%s", created.ID, architectID)

	if u.incentive != nil && architectID != "" {
		if _, _, err := u.incentive.OnWorkOrderCreated(ctx, created.ID, architectID); err != nil {
			// Creation is not rolled back; the missed accrual is reconciled
			// out of band.
			log.Printf("[workorder][usecase] accrual failed work_order_id=%s architect_id=%s err=%v", created.ID, architectID, err)
		}
	}
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}
