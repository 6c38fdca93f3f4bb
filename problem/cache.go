package problem

import "github.com/olidennis/round-eliminator-sub001/invariant"

type cacheState uint8

const (
	absent cacheState = iota
	computed
)

// Cache is one Absent/Computed slot of a Problem's side table (§4.10).
// A cache may only ever be set once; attempting to overwrite an
// already-computed value is an invariant violation, since it would
// mean some caller forgot to reset caches after mutating the problem
// that produced it.
type Cache[T any] struct {
	state cacheState
	value T
}

// Get returns the cached value and whether it has been computed.
func (c *Cache[T]) Get() (T, bool) {
	return c.value, c.state == computed
}

// Set installs v as the cached value. Panics if a value is already
// present.
func (c *Cache[T]) Set(v T) {
	if c.state == computed {
		panic(invariant.New("Cache.Set", "cache already computed"))
	}
	c.value = v
	c.state = computed
}

// Reset clears the cache back to Absent.
func (c *Cache[T]) Reset() {
	var zero T
	c.value = zero
	c.state = absent
}
