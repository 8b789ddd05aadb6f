package request

import "strings"

// ReorderRequest carries the full target order of a group after a drag ends.
// The ids must be exactly a permutation of the group's current members.
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

func (r ReorderRequest) ResolveOrderedIDs() []string {
	out := make([]string, 0, len(r.OrderedIDs))
	for _, id := range r.OrderedIDs {
		out = append(out, strings.TrimSpace(id))
	}
	return out
}
