package main

import (
	"fmt"
	"strings"
)

// Item indexes into a Vocabulary. The zero value is the empty slot.
type Item uint8

// Empty is the unfilled-slot marker. It is never scored.
const Empty Item = 0

// Vocabulary is the ordered set of accepted item identifiers. Index 0 is
// always the empty marker.
type Vocabulary struct {
	names     []string
	index     map[string]Item
	namespace string
}

// NewVocabulary builds a vocabulary with empty at index 0 followed by items in
// order. Duplicates and repeats of the empty marker are skipped.
func NewVocabulary(empty string, items []string, namespace string) (*Vocabulary, error) {
	if empty == "" {
		return nil, fmt.Errorf("vocabulary: empty item name is blank")
	}
	v := &Vocabulary{
		names:     []string{empty},
		index:     map[string]Item{empty: Empty},
		namespace: namespace,
	}
	for _, name := range items {
		if _, ok := v.index[name]; ok {
			continue
		}
		if len(v.names) > 255 {
			return nil, fmt.Errorf("vocabulary: more than 256 items")
		}
		v.index[name] = Item(len(v.names))
		v.names = append(v.names, name)
	}
	return v, nil
}

func (v *Vocabulary) Len() int { return len(v.names) }

// Name returns the full identifier of an item.
func (v *Vocabulary) Name(it Item) string {
	if int(it) >= len(v.names) {
		return fmt.Sprintf("item#%d", it)
	}
	return v.names[it]
}

// ShortName strips the namespace prefix, e.g. "minecraft:stick" -> "stick".
func (v *Vocabulary) ShortName(it Item) string {
	return strings.TrimPrefix(v.Name(it), v.namespace)
}

// Lookup resolves a full or namespace-less identifier.
func (v *Vocabulary) Lookup(name string) (Item, bool) {
	name = strings.TrimSpace(name)
	if it, ok := v.index[name]; ok {
		return it, true
	}
	if v.namespace != "" && !strings.HasPrefix(name, v.namespace) {
		it, ok := v.index[v.namespace+name]
		return it, ok
	}
	return 0, false
}

// Items returns every non-empty item in vocabulary order.
func (v *Vocabulary) Items() []Item {
	out := make([]Item, 0, len(v.names)-1)
	for i := 1; i < len(v.names); i++ {
		out = append(out, Item(i))
	}
	return out
}

// IngredientGroup holds the items interchangeable at one recipe position.
type IngredientGroup []Item

// RecipeKind tags the Recipe union.
type RecipeKind int

const (
	KindShaped RecipeKind = iota
	KindShapeless
)

func (k RecipeKind) String() string {
	switch k {
	case KindShaped:
		return "shaped"
	case KindShapeless:
		return "shapeless"
	}
	return fmt.Sprintf("RecipeKind(%d)", int(k))
}

func parseRecipeKind(s string) (RecipeKind, bool) {
	switch s {
	case "minecraft:crafting_shaped":
		return KindShaped, true
	case "minecraft:crafting_shapeless":
		return KindShapeless, true
	}
	return 0, false
}

// Recipe is a normalised crafting recipe. Grid is set for KindShaped, Ingredients
// for KindShapeless.
type Recipe struct {
	Result      string
	Source      string
	Kind        RecipeKind
	Grid        [][]IngredientGroup
	Ingredients []IngredientGroup
}

// Size returns (width, height) of a shaped pattern. Width is the shortest row.
func (r *Recipe) Size() (int, int) {
	if len(r.Grid) == 0 {
		return 0, 0
	}
	width := len(r.Grid[0])
	for _, row := range r.Grid[1:] {
		if len(row) < width {
			width = len(row)
		}
	}
	return width, len(r.Grid)
}

// Groups returns every ingredient group in row-major order (shaped) or list
// order (shapeless).
func (r *Recipe) Groups() []IngredientGroup {
	if r.Kind == KindShapeless {
		return r.Ingredients
	}
	var out []IngredientGroup
	for _, row := range r.Grid {
		out = append(out, row...)
	}
	return out
}

// Craft is a concrete 3x3 arrangement, row-major.
type Craft [9]Item

// Color is the per-slot outcome of scoring a guess.
type Color uint8

const (
	Gray Color = iota
	Yellow
	Green
)

func (c Color) String() string {
	switch c {
	case Gray:
		return "gray"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) letter() byte {
	switch c {
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	}
	return 'X'
}

func parseColor(b byte) (Color, bool) {
	switch b {
	case 'g', 'G':
		return Green, true
	case 'y', 'Y':
		return Yellow, true
	case 'x', 'X', '.', '-', '_', 'b', 'B':
		return Gray, true
	}
	return 0, false
}

// Hint is the colour of every slot of a scored guess.
type Hint [9]Color

// AllGreen is the hint of a correct guess.
var AllGreen = Hint{Green, Green, Green, Green, Green, Green, Green, Green, Green}

func (h Hint) Solved() bool { return h == AllGreen }

// String renders a hint as nine letters: G green, Y yellow, X gray.
func (h Hint) String() string {
	var b [9]byte
	for i, c := range h {
		b[i] = c.letter()
	}
	return string(b[:])
}

// ParseHint reads nine colour letters. Whitespace and commas are ignored.
func ParseHint(s string) (Hint, error) {
	var h Hint
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r' {
			continue
		}
		c, ok := parseColor(ch)
		if !ok {
			return Hint{}, fmt.Errorf("hint %q: bad colour %q at %d", s, ch, i)
		}
		if n == len(h) {
			return Hint{}, fmt.Errorf("hint %q: more than 9 colours", s)
		}
		h[n] = c
		n++
	}
	if n != len(h) {
		return Hint{}, fmt.Errorf("hint %q: got %d colours, want 9", s, n)
	}
	return h, nil
}
