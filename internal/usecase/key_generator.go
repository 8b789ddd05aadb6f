package usecase

import (
	"github.com/google/uuid"

	"studio_arq/internal/usecase/interfaces"
)

type uuidKeyGenerator struct{}

var _ interfaces.IKeyGenerator = uuidKeyGenerator{}

// NewUUIDKeyGenerator returns the production checklist key generator. UUIDs
// replace the legacy timestamp-derived keys, which could collide when two
// items were added within the same millisecond.
func NewUUIDKeyGenerator() interfaces.IKeyGenerator {
	return uuidKeyGenerator{}
}

func (uuidKeyGenerator) NewKey() string {
	return uuid.NewString()
}
