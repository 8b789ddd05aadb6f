package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound   = errors.New("work order not found")
	ErrInvalidWorkOrderID  = errors.New("invalid work order id")
	ErrEmptyChecklistText  = errors.New("checklist item text must not be empty")
	ErrInvalidChecklistOp  = errors.New("invalid checklist operation")
	ErrInvalidChecklistKey = errors.New("invalid checklist key")
)

// DefaultChecklistItemText is the placeholder text of a freshly added item.
const DefaultChecklistItemText = "Nova pergunta"

// ChecklistOpKind enumerates the checklist edit commands.

type ChecklistOpKind string

const (
	ChecklistOpAddItem    ChecklistOpKind = "add_item"
	ChecklistOpEditText   ChecklistOpKind = "edit_text"
	ChecklistOpDeleteItem ChecklistOpKind = "delete_item"
	ChecklistOpSetDone    ChecklistOpKind = "set_done"
)

// ChecklistOp is one edit command against a work order's checklist. Key is
// ignored by add_item; Text is used only by edit_text; Done only by set_done.
type ChecklistOp struct {
	Kind ChecklistOpKind
	Key  string
	Text string
	Done bool
}

// IChecklistUseCase applies checklist commands and exposes the completion
// metric.

type IChecklistUseCase interface {
	GetChecklist(ctx context.Context, workOrderID string) (entities.WorkOrder, error)
	ApplyOp(ctx context.Context, workOrderID string, op ChecklistOp) (entities.WorkOrder, error)
}

type ChecklistUseCase struct {
	repo interfaces.IWorkOrderRepository
	keys interfaces.IKeyGenerator
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(repo interfaces.IWorkOrderRepository, keys interfaces.IKeyGenerator) *ChecklistUseCase {
	if keys == nil {
		keys = NewUUIDKeyGenerator()
	}
	return &ChecklistUseCase{repo: repo, keys: keys}
}

func (u *ChecklistUseCase) GetChecklist(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := u.repo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

// ApplyOp loads the work order, applies the command as a pure transition and
// persists the canonical map together with its serialized snapshot in a
// single repository call.
func (u *ChecklistUseCase) ApplyOp(ctx context.Context, workOrderID string, op ChecklistOp) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, workOrderID)
	if err != nil {
		log.Printf("[checklist][usecase] load failed work_order_id=%s err=%v", workOrderID, err)
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	var next entities.Checklist
	switch op.Kind {
	case ChecklistOpAddItem:
		next = AddChecklistItem(wo.Checklist, u.freshKey(wo.Checklist))
	case ChecklistOpEditText:
		next, err = EditChecklistText(wo.Checklist, op.Key, op.Text)
	case ChecklistOpDeleteItem:
		next = DeleteChecklistItem(wo.Checklist, op.Key)
	case ChecklistOpSetDone:
		next = SetChecklistDone(wo.Checklist, op.Key, op.Done)
	default:
		return entities.WorkOrder{}, ErrInvalidChecklistOp
	}
	if err != nil {
		log.Printf("[checklist][usecase] op rejected work_order_id=%s op=%s err=%v", workOrderID, op.Kind, err)
		return entities.WorkOrder{}, err
	}

	snapshot, err := ChecklistSnapshot(next)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	updated, err := u.repo.UpdateChecklist(ctx, workOrderID, next, snapshot)
	if err != nil {
		log.Printf("[checklist][usecase] persist failed work_order_id=%s op=%s err=%v", workOrderID, op.Kind, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[checklist][usecase] op applied work_order_id=%s op=%s items=%d percent=%.2f",
		workOrderID, op.Kind, len(updated.Checklist), PercentComplete(updated.Checklist))
	return updated, nil
}

// freshKey asks the generator for a key until it does not collide with an
// existing one. Collisions are all but impossible with UUIDs, but test
// generators may be simpler.
func (u *ChecklistUseCase) freshKey(cl entities.Checklist) string {
	for {
		key := u.keys.NewKey()
		if _, exists := cl[key]; !exists {
			return key
		}
	}
}

// AddChecklistItem inserts a new undone item with the placeholder text under
// key. The input map is not mutated.
func AddChecklistItem(cl entities.Checklist, key string) entities.Checklist {
	next := cl.Clone()
	next[key] = entities.ChecklistItem{Text: DefaultChecklistItemText, Done: false}
	return next
}

// EditChecklistText replaces the text of key, leaving done untouched. It
// rejects empty or whitespace-only text. Editing an absent key is a no-op.
func EditChecklistText(cl entities.Checklist, key, text string) (entities.Checklist, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyChecklistText
	}
	item, ok := cl[key]
	if !ok {
		return cl.Clone(), nil
	}
	next := cl.Clone()
	item.Text = text
	next[key] = item
	return next, nil
}

// DeleteChecklistItem removes key; absent keys are a no-op.
func DeleteChecklistItem(cl entities.Checklist, key string) entities.Checklist {
	next := cl.Clone()
	delete(next, key)
	return next
}

// SetChecklistDone sets the done flag of key; absent keys are a no-op.
func SetChecklistDone(cl entities.Checklist, key string, done bool) entities.Checklist {
	item, ok := cl[key]
	if !ok {
		return cl.Clone()
	}
	next := cl.Clone()
	item.Done = done
	next[key] = item
	return next
}

// PercentComplete returns 100 * done / total, and 0 for an empty checklist.
// The value is unrounded; rounding is a display concern.
func PercentComplete(cl entities.Checklist) float64 {
	if len(cl) == 0 {
		return 0
	}
	done := 0
	for _, item := range cl {
		if item.Done {
			done++
		}
	}
	return 100 * float64(done) / float64(len(cl))
}

// ChecklistSnapshot serializes the checklist into the denormalized JSON form
// stored next to the canonical map. json.Marshal sorts map keys, so the
// snapshot is deterministic for a given checklist.
func ChecklistSnapshot(cl entities.Checklist) (string, error) {
	b, err := json.Marshal(cl)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
