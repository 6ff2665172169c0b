package chainmap

// The map embeds a single traversal cursor: a bucket index plus a node
// reference within that bucket's chain. Begin rewinds it, Next yields
// and advances. One cursor means one traversal at a time; nested or
// concurrent iteration needs Clone or Visit instead.

// begin seeks the first non-empty bucket, or leaves the cursor
// exhausted when the table is empty.
func (t *table[K, V]) begin() {
	t.curr = nil
	t.currIdx = 0

	for t.currIdx < len(t.buckets) && t.buckets[t.currIdx] == nil {
		t.currIdx++
	}

	if t.currIdx < len(t.buckets) {
		t.curr = t.buckets[t.currIdx]
	}
}

// next writes the current node's key and value through the out
// pointers, then advances: first along the chain, then to the next
// non-empty bucket. Reports whether a node was yielded.
func (t *table[K, V]) next(key *K, value *V) bool {
	if t.curr == nil {
		return false
	}

	*key = t.curr.key
	*value = t.curr.value

	t.curr = t.curr.next
	for t.curr == nil {
		t.currIdx++
		if t.currIdx >= len(t.buckets) {
			break
		}

		t.curr = t.buckets[t.currIdx]
	}

	return true
}

// Begin resets the traversal cursor to the first mapping. Order is the
// internal bucket/chain order: unspecified, and liable to change after
// any insert that triggers a rehash.
func (cm *ChainedMap[K, V]) Begin() {
	cm.begin()
}

// Next yields the cursor's current mapping through key and value and
// advances the cursor, returning false once the traversal is
// exhausted. Mutating the map mid-traversal invalidates the cursor;
// call Begin to start over.
//
//	cm.Begin()
//	var k string
//	var v int
//	for cm.Next(&k, &v) {
//		fmt.Println(k, v)
//	}
func (cm *ChainedMap[K, V]) Next(key *K, value *V) bool {
	return cm.next(key, value)
}
