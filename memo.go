package shape

// memo is a single-slot cache for one derived field: a value plus a
// validity flag. A zero memo is stale. All derived fields on Shape are
// memos so that invalidation is a uniform operation; mutation paths never
// reset individual fields by hand.
type memo[T any] struct {
	value T
	valid bool
}

// get returns the cached value and whether it is current.
func (m *memo[T]) get() (T, bool) {
	return m.value, m.valid
}

// set stores a freshly computed value and marks it current.
func (m *memo[T]) set(v T) {
	m.value = v
	m.valid = true
}

// invalidate marks the slot stale and drops the value so the backing
// storage can be collected.
func (m *memo[T]) invalidate() {
	var zero T
	m.value = zero
	m.valid = false
}
