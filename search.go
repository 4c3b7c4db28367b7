package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

var (
	ErrNoAnswers        = errors.New("answer pool is empty")
	ErrNoGuesses        = errors.New("guess pool is empty")
	ErrNoProgress       = errors.New("no guess splits the remaining answers")
	ErrInconsistentHint = errors.New("hint matches no remaining answer")
	ErrUnknownItem      = errors.New("unknown item")
)

// ── Solver ──────────────────────────────────────────────────────────

// Step records one round: the pool size before guessing, the guess, and the
// pool size left after the hint (the adversary's pick in worst-case mode).
type Step struct {
	Round     int   `json:"round"`
	Pool      int   `json:"pool"`
	Remaining int   `json:"remaining"`
	Guess     Craft `json:"-"`
	Hint      Hint  `json:"-"`
}

type memoEntry struct {
	rounds int
	steps  []Step
}

// Solver narrows a candidate answer pool using a fixed guess pool.
type Solver struct {
	guesses []Craft // shared read-only
	vocab   *Vocabulary
	log     zerolog.Logger

	memo  map[string]memoEntry
	trace []Step
}

// NewSolver creates a solver over the given guess pool.
func NewSolver(guesses []Craft, vocab *Vocabulary, logger zerolog.Logger) *Solver {
	return &Solver{
		guesses: guesses,
		vocab:   vocab,
		log:     logger,
	}
}

// EnableMemo caches worst-case results by pool content across calls.
func (s *Solver) EnableMemo() {
	if s.memo == nil {
		s.memo = make(map[string]memoEntry)
	}
}

// Trace returns the steps of the last WorstCase call.
func (s *Solver) Trace() []Step { return s.trace }

func (s *Solver) checkPools(answers []Craft) error {
	if len(s.guesses) == 0 {
		return ErrNoGuesses
	}
	if len(answers) == 0 {
		return ErrNoAnswers
	}
	return nil
}

// ── Worst case ──────────────────────────────────────────────────────

// WorstCase returns how many rounds suffice to identify any secret in answers
// when an adversary answers every guess with its largest pool.
func (s *Solver) WorstCase(answers []Craft) (int, error) {
	if err := s.checkPools(answers); err != nil {
		return 0, err
	}
	s.trace = s.trace[:0]
	return s.worstCase(answers, s.guesses, false, 1)
}

// worstCase picks the first guess whose largest pool is smallest and follows
// that pool. restricted is set when the guess pool is the last candidate.
func (s *Solver) worstCase(answers, guesses []Craft, restricted bool, round int) (int, error) {
	var key string
	if s.memo != nil && !restricted {
		key = poolKey(answers)
		if e, ok := s.memo[key]; ok {
			for _, st := range e.steps {
				st.Round += round - e.steps[0].Round
				s.trace = append(s.trace, st)
			}
			return e.rounds, nil
		}
	}
	start := len(s.trace)

	best := -1
	var worst Pool
	for i, g := range guesses {
		pool := PartitionBy(g, answers).Largest()
		if best < 0 || len(pool.Crafts) < len(worst.Crafts) {
			best = i
			worst = pool
		}
	}
	guess := guesses[best]

	s.trace = append(s.trace, Step{
		Round:     round,
		Pool:      len(answers),
		Remaining: len(worst.Crafts),
		Guess:     guess,
		Hint:      worst.Hint,
	})
	s.log.Info().
		Int("round", round).
		Int("from", len(answers)).
		Int("to", len(worst.Crafts)).
		Str("guess", FormatCraftInline(s.vocab, guess)).
		Msg("narrowed")

	if len(answers) > 1 && len(worst.Crafts) >= len(answers) {
		return 0, fmt.Errorf("round %d, %d answers: %w", round, len(answers), ErrNoProgress)
	}

	var rounds int
	switch {
	case len(worst.Crafts) == 1 && worst.Crafts[0] == guess:
		rounds = 1
	case len(worst.Crafts) == 1:
		// The next guess has to be the one remaining candidate.
		n, err := s.worstCase(worst.Crafts, worst.Crafts, true, round+1)
		if err != nil {
			return 0, err
		}
		rounds = 1 + n
	default:
		n, err := s.worstCase(worst.Crafts, s.guesses, false, round+1)
		if err != nil {
			return 0, err
		}
		rounds = 1 + n
	}

	if key != "" {
		s.memo[key] = memoEntry{rounds: rounds, steps: slices.Clone(s.trace[start:])}
	}
	return rounds, nil
}

// poolKey is the canonical content of a pool: its crafts sorted.
func poolKey(answers []Craft) string {
	sorted := slices.Clone(answers)
	slices.SortFunc(sorted, func(a, b Craft) int { return slices.Compare(a[:], b[:]) })
	buf := make([]byte, 0, len(sorted)*len(Craft{}))
	for _, c := range sorted {
		for _, it := range c {
			buf = append(buf, byte(it))
		}
	}
	return string(buf)
}
