package response

import "studio_arq/internal/domain/entities"

type OrderedItemResponse struct {
	ID         string `json:"id"`
	GroupKey   string `json:"group_key"`
	Label      string `json:"label"`
	OrderIndex int    `json:"order_index"`
}

func FromOrderedItems(items []entities.OrderedItem) []OrderedItemResponse {
	out := make([]OrderedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderedItemResponse{
			ID:         it.ID,
			GroupKey:   it.GroupKey,
			Label:      it.Label,
			OrderIndex: it.OrderIndex,
		})
	}
	return out
}

// OrderWriteOutcomeResponse reports one member of a best-effort reorder
// batch. Error is populated only on failure so the caller can retry that id
// or force a refetch.
type OrderWriteOutcomeResponse struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type ReorderResponse struct {
	GroupKey   string                      `json:"group_key"`
	Outcomes   []OrderWriteOutcomeResponse `json:"outcomes"`
	Failed     int                         `json:"failed"`
	Superseded bool                        `json:"superseded,omitempty"`
}

func FromOrderOutcomes(groupKey string, outcomes []entities.OrderWriteOutcome) ReorderResponse {
	resp := ReorderResponse{GroupKey: groupKey, Outcomes: make([]OrderWriteOutcomeResponse, 0, len(outcomes))}
	for _, o := range outcomes {
		r := OrderWriteOutcomeResponse{ID: o.ID, Index: o.Index, OK: o.OK}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		if !o.OK {
			resp.Failed++
		}
		resp.Outcomes = append(resp.Outcomes, r)
	}
	return resp
}
