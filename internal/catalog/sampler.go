package catalog

import "math/rand"

// Sampler draws random exercise subsets from a catalog entry for use as
// prompt hints. Sampling is uniform without replacement; consecutive calls
// for the same label may return different subsets.
type Sampler struct {
	catalog *Catalog
}

// NewSampler returns a sampler backed by c.
func NewSampler(c *Catalog) *Sampler {
	return &Sampler{catalog: c}
}

// Sample returns up to n distinct exercises for label. Unknown labels draw
// from the catalog's default entry, n at or above the entry size returns the
// whole entry, and n <= 0 returns an empty slice. Safe for concurrent use.
func (s *Sampler) Sample(label string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	// Lookup hands back a copy, so shuffling in place is fine.
	pool := s.catalog.Lookup(label)
	if n >= len(pool) {
		return pool
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}
