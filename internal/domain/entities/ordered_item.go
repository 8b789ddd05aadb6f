package entities

// OrderedItem is one member of an independently reorderable list (a catalog
// section, a portfolio page, etc.) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: group_key
//   - SK: id
//
// Invariant: within a group the order_index values are exactly the dense
// range 0..N-1, no gaps, no duplicates. Only the reorder coordinator rewrites
// them.
type OrderedItem struct {
	ID         string `json:"id"`
	GroupKey   string `json:"group_key"`
	Label      string `json:"label"`
	OrderIndex int    `json:"order_index"`
}

// OrderWrite is a single (id, index) assignment of a reorder batch.
type OrderWrite struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
}

// OrderWriteOutcome reports the per-id result of a best-effort batch write.
// The batch is not transactional: some members may persist while others fail.
type OrderWriteOutcome struct {
	ID    string
	Index int
	OK    bool
	Err   error
}
