package usecase

import (
	"time"

	"studio_arq/internal/usecase/interfaces"
)

type systemClock struct{}

var _ interfaces.IClock = systemClock{}

// NewSystemClock returns a clock backed by time.Now in UTC.
func NewSystemClock() interfaces.IClock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
