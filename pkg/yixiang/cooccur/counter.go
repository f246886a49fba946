package cooccur

import "sort"

// Counter tallies per-poem presence of imagery terms and of term pairs.
// A poem contributes at most one to any term or pair.
type Counter struct {
	N   int64            // poems seen
	Nx  map[string]int64 // poems containing a term
	Nxy map[Pair]int64   // poems containing both terms of a pair
}

// Pair is an unordered term pair stored with A < B.
type Pair struct {
	A, B string
}

// NewPair returns the canonical form of (a, b).
func NewPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		Nx:  make(map[string]int64),
		Nxy: make(map[Pair]int64),
	}
}

// AddPoem records one poem's distinct terms. Duplicates in terms are
// ignored.
func (c *Counter) AddPoem(terms []string) {
	c.N++

	unique := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
		c.Nx[t]++
	}

	sort.Strings(unique)
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			c.Nxy[Pair{A: unique[i], B: unique[j]}]++
		}
	}
}

// Count returns the number of poems containing both a and b, in either
// argument order. A term paired with itself counts zero.
func (c *Counter) Count(a, b string) int64 {
	if a == b {
		return 0
	}
	return c.Nxy[NewPair(a, b)]
}

// TermCount returns the number of poems containing t.
func (c *Counter) TermCount(t string) int64 {
	return c.Nx[t]
}

// TotalPoems returns the number of poems added.
func (c *Counter) TotalPoems() int64 {
	return c.N
}

// Max returns the largest pair count, 0 when nothing co-occurs.
func (c *Counter) Max() int64 {
	var best int64
	for _, n := range c.Nxy {
		if n > best {
			best = n
		}
	}
	return best
}
