package main

import (
	"fmt"
	"slices"
)

// Pool is the set of candidates that answer a guess with the same hint.
type Pool struct {
	Hint   Hint
	Crafts []Craft
}

// Partition groups candidates by hint. Pools appear in the order their first
// member appears in the input; members keep input order.
type Partition struct {
	Pools []Pool
	index map[Hint]int
}

// PartitionBy scores every answer against guess and groups them by hint.
func PartitionBy(guess Craft, answers []Craft) Partition {
	p := Partition{index: make(map[Hint]int)}
	for _, a := range answers {
		h := Score(a, guess)
		i, ok := p.index[h]
		if !ok {
			i = len(p.Pools)
			p.index[h] = i
			p.Pools = append(p.Pools, Pool{Hint: h})
		}
		p.Pools[i].Crafts = append(p.Pools[i].Crafts, a)
	}
	return p
}

// Get returns the pool for a hint.
func (p Partition) Get(h Hint) ([]Craft, bool) {
	i, ok := p.index[h]
	if !ok {
		return nil, false
	}
	return p.Pools[i].Crafts, true
}

// MustGet returns the pool for a hint the caller just computed. A miss means
// the partition and the hint engine disagree.
func (p Partition) MustGet(h Hint) []Craft {
	crafts, ok := p.Get(h)
	if !ok {
		panic(fmt.Sprintf("partition: no pool for computed hint %s", h))
	}
	return crafts
}

// Largest returns the pool an adversary would pick: the biggest one,
// preferring a pool that is not already solved, then the earliest.
func (p Partition) Largest() Pool {
	best := -1
	for i, pool := range p.Pools {
		if best < 0 {
			best = i
			continue
		}
		b := p.Pools[best]
		switch {
		case len(pool.Crafts) > len(b.Crafts):
			best = i
		case len(pool.Crafts) == len(b.Crafts) && b.Hint.Solved() && !pool.Hint.Solved():
			best = i
		}
	}
	if best < 0 {
		return Pool{}
	}
	return p.Pools[best]
}

// Sizes returns every pool size, largest first.
func (p Partition) Sizes() []int {
	sizes := make([]int, len(p.Pools))
	for i, pool := range p.Pools {
		sizes[i] = len(pool.Crafts)
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}
