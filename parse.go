package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InputData is the normalised recipe database for one run.
type InputData struct {
	Recipes []Recipe
	Vocab   *Vocabulary
	Stats   loadStats
}

// Pools holds the guess-set and the answer-set built from every recipe.
type Pools struct {
	Guesses []Craft
	Answers []Craft
	// Origin names the first recipe producing each craft.
	Origin map[Craft]string
}

// BuildPools enumerates guesses and answers for every recipe, in recipe order.
// A craft reachable from several recipes appears once.
func (d *InputData) BuildPools(cfg *Config) Pools {
	guesses := newCraftSet()
	answers := newCraftSet()
	origin := make(map[Craft]string)
	for i := range d.Recipes {
		r := &d.Recipes[i]
		g := GuessCrafts(r)
		a := AnswerCrafts(r, cfg)
		log.Debug().
			Str("recipe", r.Source).
			Str("result", r.Result).
			Stringer("kind", r.Kind).
			Int("guesses", len(g)).
			Int("answers", len(a)).
			Msg("enumerated")
		for _, c := range append(append([]Craft(nil), g...), a...) { // slices.Concat needs go1.22
			if _, ok := origin[c]; !ok {
				origin[c] = r.Result
			}
		}
		guesses.addAll(g)
		answers.addAll(a)
	}
	return Pools{Guesses: guesses.list, Answers: answers.list, Origin: origin}
}

// ParseCraft reads nine comma-separated item names, row-major. Blank entries
// and the empty item name both mean an empty slot.
func ParseCraft(vocab *Vocabulary, s string) (Craft, error) {
	var c Craft
	fields := strings.Split(strings.NewReplacer("/", ",", "|", ",", ";", ",").Replace(s), ",")
	if len(fields) != len(c) {
		return c, fmt.Errorf("craft %q: got %d slots, want 9", s, len(fields))
	}
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "_" {
			continue
		}
		it, ok := vocab.Lookup(f)
		if !ok {
			return c, fmt.Errorf("craft %q: slot %d: %w: %s", s, i, ErrUnknownItem, f)
		}
		c[i] = it
	}
	return c, nil
}

// ParseCrafts parses a list of crafts, e.g. configured openers.
func ParseCrafts(vocab *Vocabulary, texts []string) ([]Craft, error) {
	out := make([]Craft, 0, len(texts))
	for _, s := range texts {
		c, err := ParseCraft(vocab, s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// newSolver builds a solver over the guess pool with the configured switches.
func newSolver(data *InputData, pools Pools, cfg *Config, logger zerolog.Logger) *Solver {
	s := NewSolver(pools.Guesses, data.Vocab, logger)
	if cfg.Memoize {
		s.EnableMemo()
	}
	return s
}

// runWorstCase computes the worst-case round count over the answer pool.
func runWorstCase(data *InputData, pools Pools, cfg *Config, logger zerolog.Logger) (Report, error) {
	rep := NewReport("worst", data, pools)
	s := newSolver(data, pools, cfg, logger)
	rounds, err := s.WorstCase(pools.Answers)
	if err != nil {
		return rep, fmt.Errorf("worst case: %w", err)
	}
	rep.Rounds = rounds
	rep.AddSteps(data.Vocab, pools, s.Trace(), false)
	return rep, nil
}

// runPlay plays one greedy game against oracle.
func runPlay(data *InputData, pools Pools, cfg *Config, oracle Oracle, logger zerolog.Logger) (Report, error) {
	rep := NewReport("play", data, pools)
	openers, err := ParseCrafts(data.Vocab, cfg.Openers)
	if err != nil {
		return rep, fmt.Errorf("openers: %w", err)
	}
	s := newSolver(data, pools, cfg, logger)
	res, err := s.Play(pools.Answers, oracle, openers)
	if err != nil {
		return rep, fmt.Errorf("play: %w", err)
	}
	rep.Rounds = res.Rounds
	rep.Solution = FormatCraftInline(data.Vocab, res.Solution)
	rep.Recipe = shortResult(data.Vocab, pools.Origin[res.Solution])
	rep.AddSteps(data.Vocab, pools, res.Steps, true)
	return rep, nil
}

// runBenchmark plays greedily against every answer.
func runBenchmark(data *InputData, pools Pools, cfg *Config, logger zerolog.Logger) (Report, error) {
	rep := NewReport("benchmark", data, pools)
	openers, err := ParseCrafts(data.Vocab, cfg.Openers)
	if err != nil {
		return rep, fmt.Errorf("openers: %w", err)
	}
	s := newSolver(data, pools, cfg, logger)
	bm, err := s.Benchmark(pools.Answers, openers)
	if err != nil {
		return rep, fmt.Errorf("benchmark: %w", err)
	}
	rep.Benchmark = &bm
	rep.Rounds = bm.Worst
	rep.Worst = FormatCraftInline(data.Vocab, bm.WorstSecret)
	return rep, nil
}
