package chainmap

type Stats struct {
	Size            int
	Capacity        int
	LoadFactor      float64
	NonEmptyBuckets int
	MaxChainLen     int
}

// Stats walks every chain; meant for diagnostics, not hot paths.
func (t *table[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		LoadFactor: float64(t.size) / float64(len(t.buckets)),
	}

	for _, head := range t.buckets {
		if head == nil {
			continue
		}
		s.NonEmptyBuckets++

		chainLen := 0
		for n := head; n != nil; n = n.next {
			chainLen++
		}

		if chainLen > s.MaxChainLen {
			s.MaxChainLen = chainLen
		}
	}

	return s
}
