package main

import (
	"slices"
)

// itemSet is a bitmask over vocabulary items (at most 256).
type itemSet [4]uint64

func (s *itemSet) add(it Item) { s[it/64] |= 1 << (it % 64) }

func (s itemSet) has(it Item) bool { return s[it/64]&(1<<(it%64)) != 0 }

func (s itemSet) subsetOf(o itemSet) bool {
	for i := range s {
		if s[i]&^o[i] != 0 {
			return false
		}
	}
	return true
}

func (s itemSet) minus(o itemSet) itemSet {
	var out itemSet
	for i := range s {
		out[i] = s[i] &^ o[i]
	}
	return out
}

func (s itemSet) count() int {
	n := 0
	for _, w := range s {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

func (s itemSet) items() []Item {
	var out []Item
	for i := 0; i < 256; i++ {
		if s.has(Item(i)) {
			out = append(out, Item(i))
		}
	}
	return out
}

// CoverSet is one concrete ingredient set and the recipe it came from.
type CoverSet struct {
	Result string
	Items  []Item
}

// CoverReport says which items appear in how many recipe combinations and
// which few ingredient sets together touch every item.
type CoverReport struct {
	Makeup      map[Item]int
	Sets        []CoverSet
	Uncoverable []Item
}

// IngredientCover runs a greedy set cover of the vocabulary (empty excluded)
// over every concrete ingredient combination of every recipe. Sets equal to or
// strictly inside another set are discarded first.
func IngredientCover(recipes []Recipe, vocab *Vocabulary) CoverReport {
	type candidate struct {
		result string
		set    itemSet
	}
	rep := CoverReport{Makeup: make(map[Item]int)}

	var all []candidate
	seen := make(map[itemSet]bool)
	for i := range recipes {
		r := &recipes[i]
		eachCombination(r.Groups(), func(combo []Item) {
			var s itemSet
			for _, it := range combo {
				if it != Empty {
					s.add(it)
				}
			}
			for _, it := range s.items() {
				rep.Makeup[it]++
			}
			if seen[s] {
				return
			}
			seen[s] = true
			all = append(all, candidate{result: r.Result, set: s})
		})
	}

	var maximal []candidate
	for i, c := range all {
		dominated := false
		for j, o := range all {
			if i != j && c.set != o.set && c.set.subsetOf(o.set) {
				dominated = true
				break
			}
		}
		if !dominated {
			maximal = append(maximal, c)
		}
	}

	var universe, reachable itemSet
	for _, it := range vocab.Items() {
		universe.add(it)
	}
	for _, c := range maximal {
		for i := range reachable {
			reachable[i] |= c.set[i]
		}
	}
	rep.Uncoverable = universe.minus(reachable).items()

	var covered itemSet
	for covered != reachable {
		best, bestGain := -1, 0
		for i, c := range maximal {
			gain := c.set.minus(covered).count()
			if gain > bestGain {
				best, bestGain = i, gain
			}
		}
		if best < 0 {
			break
		}
		c := maximal[best]
		rep.Sets = append(rep.Sets, CoverSet{Result: c.result, Items: c.set.items()})
		for i := range covered {
			covered[i] |= c.set[i]
		}
		maximal = slices.Delete(maximal, best, best+1)
	}
	return rep
}
