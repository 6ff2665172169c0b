package chainmap

// ChainedSet stores keys only, backed by a ChainedMap with empty
// values. It inherits the map's growth and deep-copy semantics and,
// like the map, is not safe for concurrent use.
type ChainedSet[K comparable] struct {
	m ChainedMap[K, struct{}]
}

// NewSet returns an empty set with DefaultCapacity buckets.
func NewSet[K comparable](opts ...Option[K, struct{}]) *ChainedSet[K] {
	return NewSetWithCapacity(DefaultCapacity, opts...)
}

// NewSetWithCapacity returns an empty set with capacity buckets.
// Panics if capacity is not positive.
func NewSetWithCapacity[K comparable](capacity int, opts ...Option[K, struct{}]) *ChainedSet[K] {
	var cs ChainedSet[K]
	cs.m.init(capacity, opts...)

	return &cs
}

// Put adds key to the set and reports whether it was new.
func (cs *ChainedSet[K]) Put(key K) bool {
	return cs.m.Insert(key, struct{}{})
}

// Has reports whether key is in the set.
func (cs *ChainedSet[K]) Has(key K) bool {
	return cs.m.Contains(key)
}

// Delete removes key and reports whether it was present.
func (cs *ChainedSet[K]) Delete(key K) bool {
	_, ok := cs.m.erase(key)
	return ok
}

// Len returns the number of stored keys.
func (cs *ChainedSet[K]) Len() int {
	return cs.m.Len()
}

// Empty reports whether the set holds no keys.
func (cs *ChainedSet[K]) Empty() bool {
	return cs.m.Empty()
}

// Capacity returns the current number of buckets.
func (cs *ChainedSet[K]) Capacity() int {
	return cs.m.Capacity()
}

// Clear drops every key. Capacity is unchanged.
func (cs *ChainedSet[K]) Clear() {
	cs.m.Clear()
}

// Clone returns an independent deep copy of the set.
func (cs *ChainedSet[K]) Clone() *ChainedSet[K] {
	var cp ChainedSet[K]
	cp.m.copyFrom(&cs.m.table)

	return &cp
}

// Visit calls fn for every key in bucket order.
// Returns immediately if fn returns true.
func (cs *ChainedSet[K]) Visit(fn func(key K) (stop bool)) {
	cs.m.Visit(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// Keys returns all keys in bucket order.
func (cs *ChainedSet[K]) Keys() []K {
	return cs.m.Keys()
}
