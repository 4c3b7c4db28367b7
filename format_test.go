package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVocabulary(t *testing.T) {
	v, err := NewVocabulary("minecraft:air", []string{"minecraft:stick", "minecraft:air", "minecraft:coal", "minecraft:stick"}, "minecraft:")
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	if v.Len() != 3 {
		t.Errorf("Len = %d, want 3", v.Len())
	}
	if diff := cmp.Diff([]Item{1, 2}, v.Items()); diff != "" {
		t.Errorf("Items (-want +got):\n%s", diff)
	}
	for _, name := range []string{"minecraft:coal", "coal", " coal "} {
		if it, ok := v.Lookup(name); !ok || it != 2 {
			t.Errorf("Lookup(%q) = %d, %v", name, it, ok)
		}
	}
	if _, ok := v.Lookup("diamond"); ok {
		t.Error("Lookup(diamond) succeeded")
	}
	if got := v.ShortName(1); got != "stick" {
		t.Errorf("ShortName(1) = %q", got)
	}
	if _, err := NewVocabulary("", nil, ""); err == nil {
		t.Error("blank empty item: want error")
	}
}

func TestParseHint(t *testing.T) {
	h, err := ParseHint("GGG yyy x.-")
	if err != nil {
		t.Fatalf("ParseHint: %v", err)
	}
	want := Hint{Green, Green, Green, Yellow, Yellow, Yellow, Gray, Gray, Gray}
	if h != want {
		t.Errorf("ParseHint = %s, want %s", h, want)
	}
	if h.String() != "GGGYYYXXX" {
		t.Errorf("String = %q", h.String())
	}
	if again, _ := ParseHint(h.String()); again != h {
		t.Errorf("round trip = %s", again)
	}
	for _, bad := range []string{"", "GGGGGGGG", "GGGGGGGGGG", "GGGGGGGGZ"} {
		if _, err := ParseHint(bad); err == nil {
			t.Errorf("ParseHint(%q): want error", bad)
		}
	}
	if !AllGreen.Solved() || (Hint{}).Solved() {
		t.Error("Solved is wrong")
	}
}

func TestParseCraft(t *testing.T) {
	v := testVocab(t)
	stick := mustItem(t, v, "stick")
	coal := mustItem(t, v, "coal")
	want := Craft{0, coal, 0, 0, stick, 0, 0, 0, 0}

	for _, s := range []string{
		"_,coal,_,_,stick,_,_,_,_",
		",minecraft:coal,,,minecraft:stick,,,,",
		"_,coal,_ / _,stick,_ / _,_,_",
		"minecraft:air|coal|_|_|stick|_|_|_|_",
	} {
		got, err := ParseCraft(v, s)
		if err != nil {
			t.Errorf("ParseCraft(%q): %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCraft(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := ParseCraft(v, "stick,stick"); err == nil {
		t.Error("short craft: want error")
	}
	if _, err := ParseCraft(v, "bedrock,_,_,_,_,_,_,_,_"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown item: err = %v", err)
	}
}

func TestFormatCraft(t *testing.T) {
	v := testVocab(t)
	c := mustCraft(t, v, "_,coal,_,_,stick,_,_,_,_")
	if got := FormatCraftInline(v, c); got != "_,coal,_,_,stick,_,_,_,_" {
		t.Errorf("FormatCraftInline = %q", got)
	}
	if back := mustCraft(t, v, FormatCraftInline(v, c)); back != c {
		t.Errorf("inline round trip = %v", back)
	}
	want := "_     | coal  | _    \n" +
		"_     | stick | _    \n" +
		"_     | _     | _    "
	if got := FormatCraft(v, c); got != want {
		t.Errorf("FormatCraft =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatReport(t *testing.T) {
	rep := Report{
		Mode: "worst", Recipes: 2, Guesses: 10, Answers: 4, Rounds: 2,
		Steps: []StepReport{
			{Round: 1, Pool: 4, Remaining: 1, Guess: "stick,_,_,_,_,_,_,_,_", Recipe: "torch"},
			{Round: 2, Pool: 1, Remaining: 1, Guess: "coal,_,_,_,_,_,_,_,_"},
		},
	}
	want := "2 filtered recipes; 10 total recipe guesses; 4 total recipe answers\n" +
		"Round 1: from 4 to 1 possible solutions by [stick,_,_,_,_,_,_,_,_] (torch)\n" +
		"Round 2: from 1 to 1 possible solutions by [coal,_,_,_,_,_,_,_,_]\n" +
		"Worst case attempts: 2\n"
	if diff := cmp.Diff(want, FormatReport(rep)); diff != "" {
		t.Errorf("worst report (-want +got):\n%s", diff)
	}

	rep = Report{
		Mode: "play", Rounds: 1, Solution: "coal,_,_,_,_,_,_,_,_", Recipe: "coal_block",
		Steps: []StepReport{{Round: 1, Pool: 3, Remaining: 1, Guess: "coal,_,_,_,_,_,_,_,_", Hint: "GXXXXXXXX"}},
	}
	out := FormatReport(rep)
	for _, line := range []string{
		"Round 1: from 3 to 1 possible solutions by [coal,_,_,_,_,_,_,_,_] -> GXXXXXXXX\n",
		"Solved in 1 attempts: [coal,_,_,_,_,_,_,_,_] (coal_block)\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("play report missing %q:\n%s", line, out)
		}
	}

	rep = Report{
		Mode:      "benchmark",
		Benchmark: &BenchmarkResult{Games: 3, Worst: 2, Mean: 5.0 / 3, Histogram: map[int]int{2: 2, 1: 1}},
		Worst:     "coal,_,_,_,_,_,_,_,_",
	}
	out = FormatReport(rep)
	for _, line := range []string{
		"3 games: worst 2 attempts, mean 1.667\n",
		"   1 attempts: 1\n   2 attempts: 2\n",
		"Worst secret: [coal,_,_,_,_,_,_,_,_]\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("benchmark report missing %q:\n%s", line, out)
		}
	}
}
