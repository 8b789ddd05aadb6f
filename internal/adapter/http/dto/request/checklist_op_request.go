package request

import "strings"

// ChecklistOpRequest is one edit command against a work order's checklist.
//
// Op is one of add_item, edit_text, delete_item, set_done. Key is required
// for every op except add_item; Text only matters to edit_text and Done only
// to set_done.
type ChecklistOpRequest struct {
	Op   string `json:"op" binding:"required"`
	Key  string `json:"key"`
	Text string `json:"text"`
	Done *bool  `json:"done"`
}

func (r ChecklistOpRequest) ResolveOp() string {
	return strings.ToLower(strings.TrimSpace(r.Op))
}

func (r ChecklistOpRequest) ResolveKey() string {
	return strings.TrimSpace(r.Key)
}

func (r ChecklistOpRequest) ResolveDone() bool {
	return r.Done != nil && *r.Done
}
