package chainmap

import (
	"hash/maphash"

	"github.com/zeebo/xxh3"
)

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a hash function backed by hash/maphash
// with a freshly made seed.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// HasherXXH3 hashes string keys with XXH3 and a caller-provided seed.
// Unlike the maphash default, it is deterministic across processes
// for a fixed seed.
type HasherXXH3 struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h HasherXXH3) Hash(k string) uint64 {
	return xxh3.HashStringSeed(k, h.Seed)
}

// MakeXXH3HashFunc returns a HashFunc for string keys backed by XXH3.
func MakeXXH3HashFunc(seed uint64) HashFunc[string] {
	return HasherXXH3{Seed: seed}.Hash
}
