package chainmap

// loadFactorMax is the size/capacity ratio above which the bucket
// array doubles. The check runs after every insert that created a node,
// so a table sitting exactly at the threshold does not grow.
const loadFactorMax = 1.5

// node is one key/value entry in a bucket's chain. The key is never
// mutated after allocation; a rehash relinks nodes without copying them.
type node[K comparable, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

type table[K comparable, V any] struct {
	buckets []*node[K, V]
	size    int

	hashFunc HashFunc[K]

	// Cursor state for Begin/Next.
	curr    *node[K, V]
	currIdx int

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		panic("chainmap: capacity must be positive")
	}

	t.buckets = make([]*node[K, V], capacity)
	t.size = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}
}

func (t *table[K, V]) bucketIndex(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

// find returns the node holding key, or nil.
func (t *table[K, V]) find(key K) *node[K, V] {
	for n := t.buckets[t.bucketIndex(key)]; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}

	return nil
}

// insert links a new node at the head of the target chain and reports
// whether it did. An already present key keeps its current value.
func (t *table[K, V]) insert(key K, value V) bool {
	idx := t.bucketIndex(key)

	for n := t.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			return false
		}
	}

	t.buckets[idx] = &node[K, V]{key: key, value: value, next: t.buckets[idx]}
	t.size++

	if float64(t.size)/float64(len(t.buckets)) > loadFactorMax {
		t.rehash(len(t.buckets) * 2)
	}

	return true
}

// rehash relinks every existing node into a fresh bucket array of
// newCapacity slots. Nodes are moved, never reallocated, and size
// is unchanged.
func (t *table[K, V]) rehash(newCapacity int) {
	old := t.buckets
	t.buckets = make([]*node[K, V], newCapacity)

	for _, head := range old {
		for n := head; n != nil; {
			next := n.next

			idx := t.bucketIndex(n.key)
			n.next = t.buckets[idx]
			t.buckets[idx] = n

			n = next
		}
	}
}

func (t *table[K, V]) get(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}

	return t.emptyV, false
}

// erase unlinks the node holding key, fixing up the bucket head or the
// previous node's next-link, and returns the erased value.
func (t *table[K, V]) erase(key K) (V, bool) {
	idx := t.bucketIndex(key)

	var prev *node[K, V]
	for n := t.buckets[idx]; n != nil; prev, n = n, n.next {
		if n.key != key {
			continue
		}

		if prev == nil {
			t.buckets[idx] = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		t.size--

		return n.value, true
	}

	return t.emptyV, false
}

// clear drops every chain. The bucket array keeps its length.
func (t *table[K, V]) clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}

	t.size = 0
}

// copyFrom rebuilds t as a deep copy of other: same capacity, same
// mappings, brand-new nodes. Chain order within each bucket is kept so
// both tables enumerate identically until one of them mutates.
func (t *table[K, V]) copyFrom(other *table[K, V]) {
	t.buckets = make([]*node[K, V], len(other.buckets))
	t.size = other.size
	t.hashFunc = other.hashFunc
	t.curr = nil
	t.currIdx = 0

	for i, head := range other.buckets {
		tail := &t.buckets[i]
		for n := head; n != nil; n = n.next {
			*tail = &node[K, V]{key: n.key, value: n.value}
			tail = &(*tail).next
		}
	}
}
