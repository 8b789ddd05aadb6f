package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"
)

var (
	ErrInvalidGroupKey    = errors.New("invalid group key")
	ErrInvalidPermutation = errors.New("submitted ids are not a permutation of the group")
	ErrStaleReorder       = errors.New("reorder superseded by a newer request")
)

// IReorderCoordinator turns a drag-end event into a validated, sequenced
// batch of persistence writes.

type IReorderCoordinator interface {
	ReadGroup(ctx context.Context, groupKey string) ([]entities.OrderedItem, error)
	Reorder(ctx context.Context, groupKey string, orderedIDs []string) ([]entities.OrderWriteOutcome, error)
}

// ReorderCoordinator keeps an optimistic local copy of each group and a
// strictly increasing sequence number per group key.
//
// A reorder is applied to local state before any persistence call returns.
// When the batch write completes, its sequence number is compared against the
// latest issued one for the group; a stale completion is discarded without
// touching state, which is the only cancellation mechanism — overlapping
// reorders are never queued or rejected.
type ReorderCoordinator struct {
	repo interfaces.IOrderedItemRepository

	mu     sync.Mutex
	groups map[string][]entities.OrderedItem
	seq    map[string]uint64
}

var _ IReorderCoordinator = (*ReorderCoordinator)(nil)

func NewReorderCoordinator(repo interfaces.IOrderedItemRepository) *ReorderCoordinator {
	return &ReorderCoordinator{
		repo:   repo,
		groups: make(map[string][]entities.OrderedItem),
		seq:    make(map[string]uint64),
	}
}

func (c *ReorderCoordinator) ReadGroup(ctx context.Context, groupKey string) ([]entities.OrderedItem, error) {
	groupKey = strings.TrimSpace(groupKey)
	if groupKey == "" {
		return nil, ErrInvalidGroupKey
	}
	current, err := c.loadGroup(ctx, groupKey)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderedItem, len(current))
	copy(out, current)
	return out, nil
}

func (c *ReorderCoordinator) Reorder(ctx context.Context, groupKey string, orderedIDs []string) ([]entities.OrderWriteOutcome, error) {
	groupKey = strings.TrimSpace(groupKey)
	if groupKey == "" {
		return nil, ErrInvalidGroupKey
	}

	if _, err := c.loadGroup(ctx, groupKey); err != nil {
		return nil, err
	}

	// Validate, apply optimistically and stamp the sequence in one critical
	// section; the full target order exists before any write is issued.
	c.mu.Lock()
	current := c.groups[groupKey]
	writes, err := ComputeOrder(current, orderedIDs)
	if err != nil {
		c.mu.Unlock()
		log.Printf("[reorder][usecase] rejected group=%s ids=%d err=%v", groupKey, len(orderedIDs), err)
		return nil, err
	}
	c.groups[groupKey] = ApplyOrder(current, writes)
	c.seq[groupKey]++
	seq := c.seq[groupKey]
	c.mu.Unlock()

	log.Printf("[reorder][usecase] persist start group=%s seq=%d writes=%d", groupKey, seq, len(writes))
	outcomes, err := c.repo.WriteOrderBatch(ctx, groupKey, writes)

	c.mu.Lock()
	latest := c.seq[groupKey]
	c.mu.Unlock()
	if seq != latest {
		// A newer reorder for this group was issued while this one was in
		// flight; its completion wins and this one is discarded.
		log.Printf("[reorder][usecase] stale completion discarded group=%s seq=%d latest=%d", groupKey, seq, latest)
		return nil, ErrStaleReorder
	}
	if err != nil {
		log.Printf("[reorder][usecase] persist failed group=%s seq=%d err=%v", groupKey, seq, err)
		return nil, err
	}
	if failed := FailedWrites(outcomes); failed > 0 {
		log.Printf("[reorder][usecase] persist partial group=%s seq=%d failed=%d/%d", groupKey, seq, failed, len(outcomes))
	} else {
		log.Printf("[reorder][usecase] persist success group=%s seq=%d", groupKey, seq)
	}
	return outcomes, nil
}

// loadGroup returns the optimistic local state for groupKey, fetching it from
// the repository on first touch.
func (c *ReorderCoordinator) loadGroup(ctx context.Context, groupKey string) ([]entities.OrderedItem, error) {
	c.mu.Lock()
	current, ok := c.groups[groupKey]
	c.mu.Unlock()
	if ok {
		return current, nil
	}

	fetched, err := c.repo.ReadGroup(ctx, groupKey)
	if err != nil {
		log.Printf("[reorder][usecase] read-group failed group=%s err=%v", groupKey, err)
		return nil, err
	}
	sorted := make([]entities.OrderedItem, len(fetched))
	copy(sorted, fetched)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.groups[groupKey]; ok {
		return cached, nil
	}
	c.groups[groupKey] = sorted
	return sorted, nil
}

// ComputeOrder validates that orderedIDs is exactly a permutation of the ids
// in current and returns the dense 0..N-1 index assignment. It performs no
// I/O and mutates nothing.
func ComputeOrder(current []entities.OrderedItem, orderedIDs []string) ([]entities.OrderWrite, error) {
	if len(orderedIDs) != len(current) {
		return nil, ErrInvalidPermutation
	}
	known := make(map[string]bool, len(current))
	for _, it := range current {
		known[it.ID] = true
	}
	seen := make(map[string]bool, len(orderedIDs))
	writes := make([]entities.OrderWrite, 0, len(orderedIDs))
	for pos, id := range orderedIDs {
		if !known[id] || seen[id] {
			return nil, ErrInvalidPermutation
		}
		seen[id] = true
		writes = append(writes, entities.OrderWrite{ID: id, Index: pos})
	}
	return writes, nil
}

// ApplyOrder returns the group re-indexed per writes, sorted by new index.
// Applying the same writes twice yields the same result as applying them
// once.
func ApplyOrder(current []entities.OrderedItem, writes []entities.OrderWrite) []entities.OrderedItem {
	byID := make(map[string]entities.OrderedItem, len(current))
	for _, it := range current {
		byID[it.ID] = it
	}
	out := make([]entities.OrderedItem, 0, len(writes))
	for _, w := range writes {
		it, ok := byID[w.ID]
		if !ok {
			continue
		}
		it.OrderIndex = w.Index
		out = append(out, it)
	}
	return out
}

// FailedWrites counts the failed entries of a batch outcome list.
func FailedWrites(outcomes []entities.OrderWriteOutcome) int {
	failed := 0
	for _, o := range outcomes {
		if !o.OK {
			failed++
		}
	}
	return failed
}
