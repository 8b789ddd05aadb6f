package interfaces

import "time"

// IClock makes "now" injectable so urgency windows are deterministic under
// test.

type IClock interface {
	Now() time.Time
}
