package chainmap

import "errors"

// DefaultCapacity is the number of buckets a map starts with when no
// explicit capacity is requested.
const DefaultCapacity = 10

// ErrKeyNotFound is returned by At, AtFn and Erase for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// ChainedMap is a hash map resolving collisions with separate chaining.
// Each bucket heads a singly linked chain of nodes; new keys are linked
// at the head of their chain, and the bucket array doubles once the load
// factor exceeds 1.5. Lookups, inserts and erases run in O(L), where L
// is the length of the probed chain.
// ChainedMap is not safe for concurrent use; callers must serialize
// access themselves, including during Begin/Next traversals.
type ChainedMap[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty map with DefaultCapacity buckets.
func New[K comparable, V any](opts ...Option[K, V]) *ChainedMap[K, V] {
	return NewWithCapacity[K, V](DefaultCapacity, opts...)
}

// NewWithCapacity returns an empty map with capacity buckets.
// Panics if capacity is not positive.
func NewWithCapacity[K comparable, V any](capacity int, opts ...Option[K, V]) *ChainedMap[K, V] {
	var cm ChainedMap[K, V]
	cm.init(capacity, opts...)

	return &cm
}

// Insert adds the mapping {key -> value} if key is not mapped yet and
// reports whether a new mapping was created. An existing mapping is
// left untouched, value included.
func (cm *ChainedMap[K, V]) Insert(key K, value V) bool {
	return cm.insert(key, value)
}

// Get returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (cm *ChainedMap[K, V]) Get(key K) (V, bool) {
	return cm.get(key)
}

// At returns the value stored for key, or ErrKeyNotFound.
func (cm *ChainedMap[K, V]) At(key K) (V, error) {
	v, ok := cm.get(key)
	if !ok {
		return v, ErrKeyNotFound
	}

	return v, nil
}

// AtFn calls fn with a pointer to the value stored for key, allowing
// in-place updates, and returns ErrKeyNotFound if key is absent.
// The pointer stays valid across rehashes but not across Erase or
// Clear; don't retain it past the call.
func (cm *ChainedMap[K, V]) AtFn(key K, fn func(*V)) error {
	n := cm.find(key)
	if n == nil {
		return ErrKeyNotFound
	}

	fn(&n.value)

	return nil
}

// Contains reports whether key is present.
func (cm *ChainedMap[K, V]) Contains(key K) bool {
	return cm.find(key) != nil
}

// Erase removes the mapping for key and returns the erased value, or
// ErrKeyNotFound if key is absent. Capacity never shrinks.
func (cm *ChainedMap[K, V]) Erase(key K) (V, error) {
	v, ok := cm.erase(key)
	if !ok {
		return v, ErrKeyNotFound
	}

	return v, nil
}

// Clear drops every mapping. Capacity is unchanged.
func (cm *ChainedMap[K, V]) Clear() {
	cm.clear()
}

// Len returns the number of stored mappings.
func (cm *ChainedMap[K, V]) Len() int {
	return cm.size
}

// Empty reports whether the map holds no mappings.
func (cm *ChainedMap[K, V]) Empty() bool {
	return cm.size == 0
}

// Capacity returns the current number of buckets.
// Intended for diagnostics and tests.
func (cm *ChainedMap[K, V]) Capacity() int {
	return len(cm.buckets)
}

// Clone returns an independent deep copy: same capacity, same mappings,
// brand-new nodes. Mutating either map never affects the other.
func (cm *ChainedMap[K, V]) Clone() *ChainedMap[K, V] {
	var cp ChainedMap[K, V]
	cp.copyFrom(&cm.table)

	return &cp
}

// CopyFrom releases the map's current contents and rebuilds it as a
// deep copy of other. Copying a map onto itself is a no-op.
func (cm *ChainedMap[K, V]) CopyFrom(other *ChainedMap[K, V]) {
	if cm == other {
		return
	}

	cm.copyFrom(&other.table)
}

// Visit calls fn for every stored key-value pair in bucket order.
// Returns immediately if fn returns true.
func (cm *ChainedMap[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for _, head := range cm.buckets {
		for n := head; n != nil; n = n.next {
			if fn(n.key, n.value) {
				return
			}
		}
	}
}

// VisitAll calls fn for every stored key-value pair.
func (cm *ChainedMap[K, V]) VisitAll(fn func(key K, value V)) {
	cm.Visit(func(key K, value V) bool {
		fn(key, value)
		return false
	})
}

// Keys returns all map keys in bucket order.
func (cm *ChainedMap[K, V]) Keys() (keys []K) {
	cm.VisitAll(func(key K, value V) {
		keys = append(keys, key)
	})

	return
}

// Values returns all map values in bucket order.
func (cm *ChainedMap[K, V]) Values() (values []V) {
	cm.VisitAll(func(key K, value V) {
		values = append(values, value)
	})

	return
}
