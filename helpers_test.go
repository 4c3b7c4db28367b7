package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func testVocab(t *testing.T) *Vocabulary {
	t.Helper()
	cfg := DefaultConfig()
	v, err := cfg.NewVocabulary()
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	return v
}

func mustItem(t *testing.T, v *Vocabulary, name string) Item {
	t.Helper()
	it, ok := v.Lookup(name)
	if !ok {
		t.Fatalf("unknown item %q", name)
	}
	return it
}

func mustCraft(t *testing.T, v *Vocabulary, s string) Craft {
	t.Helper()
	c, err := ParseCraft(v, s)
	if err != nil {
		t.Fatalf("ParseCraft(%q): %v", s, err)
	}
	return c
}

func group(items ...Item) IngredientGroup { return IngredientGroup(items) }

func quietSolver(guesses []Craft, v *Vocabulary) *Solver {
	return NewSolver(guesses, v, zerolog.Nop())
}
