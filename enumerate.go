package main

import "slices"

// craftSet collects distinct crafts in first-seen order.
type craftSet struct {
	seen map[Craft]struct{}
	list []Craft
}

func newCraftSet() *craftSet {
	return &craftSet{seen: make(map[Craft]struct{})}
}

func (s *craftSet) add(c Craft) {
	if _, ok := s.seen[c]; ok {
		return
	}
	s.seen[c] = struct{}{}
	s.list = append(s.list, c)
}

func (s *craftSet) addAll(cs []Craft) {
	for _, c := range cs {
		s.add(c)
	}
}

// eachCombination calls fn with every choice of one item per group, the last
// group varying fastest. fn must not keep the slice.
func eachCombination(groups []IngredientGroup, fn func(combo []Item)) {
	for _, g := range groups {
		if len(g) == 0 {
			return
		}
	}
	idx := make([]int, len(groups))
	combo := make([]Item, len(groups))
	for {
		for i, g := range groups {
			combo[i] = g[idx[i]]
		}
		fn(combo)

		i := len(groups) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(groups[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// eachPlacement calls fn with every ordered selection of k distinct slots out
// of 9, in lexicographic order.
func eachPlacement(k int, fn func(slots []int)) {
	if k > 9 {
		return
	}
	slots := make([]int, k)
	var used [9]bool
	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			fn(slots)
			return
		}
		for s := 0; s < 9; s++ {
			if used[s] {
				continue
			}
			used[s] = true
			slots[pos] = s
			rec(pos + 1)
			used[s] = false
		}
	}
	rec(0)
}

// shapelessCrafts places every distinct sorted item combination into every
// ordered selection of slots.
func shapelessCrafts(groups []IngredientGroup) []Craft {
	var combos [][]Item
	seen := make(map[Craft]struct{})
	eachCombination(groups, func(combo []Item) {
		sorted := slices.Clone(combo)
		slices.Sort(sorted)
		var key Craft
		copy(key[:], sorted)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		combos = append(combos, sorted)
	})

	out := newCraftSet()
	for _, combo := range combos {
		eachPlacement(len(combo), func(slots []int) {
			var c Craft
			for i, s := range slots {
				c[s] = combo[i]
			}
			out.add(c)
		})
	}
	return out.list
}

// shapedCraftsAt expands a shaped pattern with its top-left corner at (ox, oy).
func shapedCraftsAt(r *Recipe, ox, oy int) []Craft {
	width, height := r.Size()
	if width == 0 || ox < 0 || oy < 0 || ox+width > 3 || oy+height > 3 {
		return nil
	}
	flat := r.Groups()
	out := newCraftSet()
	eachCombination(flat, func(combo []Item) {
		var c Craft
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				c[x+ox+(y+oy)*3] = combo[x+y*width]
			}
		}
		out.add(c)
	})
	return out.list
}

// GuessCrafts returns every distinct craft the recipe can be guessed as.
func GuessCrafts(r *Recipe) []Craft {
	switch r.Kind {
	case KindShaped:
		width, height := r.Size()
		out := newCraftSet()
		for ox := 0; ox <= 3-width; ox++ {
			for oy := 0; oy <= 3-height; oy++ {
				out.addAll(shapedCraftsAt(r, ox, oy))
			}
		}
		return out.list
	case KindShapeless:
		return shapelessCrafts(r.Ingredients)
	}
	panic("unknown recipe kind " + r.Kind.String())
}

// AnswerCrafts returns every distinct craft the recipe can be the secret as.
// Shaped recipes sit at their canonical offset only.
func AnswerCrafts(r *Recipe, cfg *Config) []Craft {
	switch r.Kind {
	case KindShaped:
		ox, oy := cfg.CanonicalOffset(r.Size())
		return shapedCraftsAt(r, ox, oy)
	case KindShapeless:
		if !cfg.ShapelessAnswers {
			return nil
		}
		return shapelessCrafts(r.Ingredients)
	}
	panic("unknown recipe kind " + r.Kind.String())
}
