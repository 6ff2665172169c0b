package chainmap

import (
	"strconv"
	"testing"
)

const benchSize = 1 << 16

func genBenchKeys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		// Spread the bits a little so chains stay balanced.
		keys[i] = uint64(i) * 0x9E3779B97F4A7C15
	}

	return keys
}

func BenchmarkMapGet_Hit(b *testing.B) {
	keys := genBenchKeys(benchSize)

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[uint64]uint64, benchSize)
		for _, k := range keys {
			m[k] = k
		}

		b.ResetTimer()
		for i := 0; b.Loop(); i++ {
			_ = m[keys[i%benchSize]]
		}
	})

	b.Run("variant=chainedMap", func(b *testing.B) {
		cm := NewWithCapacity[uint64, uint64](benchSize)
		for _, k := range keys {
			cm.Insert(k, k)
		}

		b.ResetTimer()
		for i := 0; b.Loop(); i++ {
			cm.Get(keys[i%benchSize])
		}
	})
}

func BenchmarkMapGet_Miss(b *testing.B) {
	keys := genBenchKeys(benchSize)

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[uint64]uint64, benchSize)
		for _, k := range keys {
			m[k] = k
		}

		b.ResetTimer()
		for i := 0; b.Loop(); i++ {
			_ = m[uint64(i)|1<<63]
		}
	})

	b.Run("variant=chainedMap", func(b *testing.B) {
		cm := NewWithCapacity[uint64, uint64](benchSize)
		for _, k := range keys {
			cm.Insert(k, k)
		}

		b.ResetTimer()
		for i := 0; b.Loop(); i++ {
			cm.Get(uint64(i) | 1<<63)
		}
	})
}

func BenchmarkMapInsert(b *testing.B) {
	keys := genBenchKeys(benchSize)

	b.Run("variant=stdMap", func(b *testing.B) {
		for b.Loop() {
			m := make(map[uint64]uint64, benchSize)
			for _, k := range keys {
				m[k] = k
			}
		}
	})

	b.Run("variant=chainedMap", func(b *testing.B) {
		for b.Loop() {
			cm := NewWithCapacity[uint64, uint64](benchSize)
			for _, k := range keys {
				cm.Insert(k, k)
			}
		}
	})
}

func BenchmarkMapTraversal(b *testing.B) {
	cm := NewWithCapacity[string, int](1024)
	for i := range 1000 {
		cm.Insert(strconv.Itoa(i), i)
	}

	b.Run("method=cursor", func(b *testing.B) {
		var (
			k string
			v int
		)
		for b.Loop() {
			cm.Begin()
			for cm.Next(&k, &v) {
			}
		}
	})

	b.Run("method=visit", func(b *testing.B) {
		for b.Loop() {
			cm.VisitAll(func(string, int) {})
		}
	})
}
