package interfaces

// IKeyGenerator issues fresh keys for dynamic checklist items. Keys must be
// collision-resistant and must not be derived from wall-clock time alone.

type IKeyGenerator interface {
	NewKey() string
}
