package main

import (
	"fmt"
	"slices"
	"strings"
)

// FormatCraft renders a craft as three rows of short item names.
func FormatCraft(vocab *Vocabulary, c Craft) string {
	names := make([]string, len(c))
	width := 1
	for i, it := range c {
		names[i] = craftSlotName(vocab, it)
		width = max(width, len(names[i]))
	}
	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%-*s", width, names[row*3+col])
		}
	}
	return b.String()
}

// FormatCraftInline renders a craft on one line, readable back by ParseCraft.
func FormatCraftInline(vocab *Vocabulary, c Craft) string {
	names := make([]string, len(c))
	for i, it := range c {
		names[i] = craftSlotName(vocab, it)
	}
	return strings.Join(names, ",")
}

func craftSlotName(vocab *Vocabulary, it Item) string {
	if it == Empty {
		return "_"
	}
	return vocab.ShortName(it)
}

// StepReport is a Step with the guess rendered.
type StepReport struct {
	Round     int    `json:"round"`
	Pool      int    `json:"pool"`
	Remaining int    `json:"remaining"`
	Guess     string `json:"guess"`
	Recipe    string `json:"recipe,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

// Report is the JSON-serialisable result of a run.
type Report struct {
	Mode      string           `json:"mode"`
	Recipes   int              `json:"recipes"`
	Guesses   int              `json:"guesses"`
	Answers   int              `json:"answers"`
	Rounds    int              `json:"rounds,omitempty"`
	Steps     []StepReport     `json:"steps,omitempty"`
	Solution  string           `json:"solution,omitempty"`
	Recipe    string           `json:"recipe,omitempty"`
	Benchmark *BenchmarkResult `json:"benchmark,omitempty"`
	Worst     string           `json:"worstSecret,omitempty"`
}

// NewReport fills the pool summary shared by every mode.
func NewReport(mode string, data *InputData, pools Pools) Report {
	return Report{
		Mode:    mode,
		Recipes: len(data.Recipes),
		Guesses: len(pools.Guesses),
		Answers: len(pools.Answers),
	}
}

// AddSteps renders solver steps into the report. Hints are kept only when
// they came from an oracle.
func (r *Report) AddSteps(vocab *Vocabulary, pools Pools, steps []Step, withHints bool) {
	for _, st := range steps {
		sr := StepReport{
			Round:     st.Round,
			Pool:      st.Pool,
			Remaining: st.Remaining,
			Guess:     FormatCraftInline(vocab, st.Guess),
			Recipe:    shortResult(vocab, pools.Origin[st.Guess]),
		}
		if withHints {
			sr.Hint = st.Hint.String()
		}
		r.Steps = append(r.Steps, sr)
	}
}

func shortResult(vocab *Vocabulary, result string) string {
	return strings.TrimPrefix(result, vocab.namespace)
}

// FormatReport produces the text output for a run.
func FormatReport(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d filtered recipes; %d total recipe guesses; %d total recipe answers\n",
		r.Recipes, r.Guesses, r.Answers)

	for _, st := range r.Steps {
		recipe := ""
		if st.Recipe != "" {
			recipe = " (" + st.Recipe + ")"
		}
		hint := ""
		if st.Hint != "" {
			hint = " -> " + st.Hint
		}
		fmt.Fprintf(&b, "Round %d: from %d to %d possible solutions by [%s]%s%s\n",
			st.Round, st.Pool, st.Remaining, st.Guess, recipe, hint)
	}

	switch r.Mode {
	case "worst":
		fmt.Fprintf(&b, "Worst case attempts: %d\n", r.Rounds)
	case "play":
		fmt.Fprintf(&b, "Solved in %d attempts: [%s]", r.Rounds, r.Solution)
		if r.Recipe != "" {
			fmt.Fprintf(&b, " (%s)", r.Recipe)
		}
		b.WriteByte('\n')
	case "benchmark":
		bm := r.Benchmark
		fmt.Fprintf(&b, "%d games: worst %d attempts, mean %.3f\n", bm.Games, bm.Worst, bm.Mean)
		rounds := make([]int, 0, len(bm.Histogram))
		for n := range bm.Histogram {
			rounds = append(rounds, n)
		}
		slices.Sort(rounds)
		for _, n := range rounds {
			fmt.Fprintf(&b, "  %2d attempts: %d\n", n, bm.Histogram[n])
		}
		if r.Worst != "" {
			fmt.Fprintf(&b, "Worst secret: [%s]\n", r.Worst)
		}
	}
	return b.String()
}

// FormatCover renders the ingredient cover report.
func FormatCover(vocab *Vocabulary, rep CoverReport) string {
	var b strings.Builder
	b.WriteString("Recipe makeup:\n")
	for _, it := range vocab.Items() {
		fmt.Fprintf(&b, "    %s has %d recipe(s)\n", vocab.ShortName(it), rep.Makeup[it])
	}
	for _, s := range rep.Sets {
		names := make([]string, len(s.Items))
		for i, it := range s.Items {
			names[i] = vocab.ShortName(it)
		}
		fmt.Fprintf(&b, "%s: {%s}\n", shortResult(vocab, s.Result), strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "took %d recipes!\n", len(rep.Sets))
	if len(rep.Uncoverable) > 0 {
		names := make([]string, len(rep.Uncoverable))
		for i, it := range rep.Uncoverable {
			names[i] = vocab.ShortName(it)
		}
		fmt.Fprintf(&b, "not used by any recipe: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}
