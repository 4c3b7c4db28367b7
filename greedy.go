package main

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// MostInformation returns the guess whose pool sizes, sorted largest first,
// are lexicographically smallest, along with its partition of answers. Ties go
// to the earlier guess.
func MostInformation(answers, guesses []Craft) (Craft, Partition) {
	var (
		best      Craft
		bestPart  Partition
		bestSizes []int
	)
	for i, g := range guesses {
		p := PartitionBy(g, answers)
		sizes := p.Sizes()
		if i == 0 || slices.Compare(sizes, bestSizes) < 0 {
			best, bestPart, bestSizes = g, p, sizes
		}
	}
	return best, bestPart
}

// PlayResult is the outcome of one greedy game.
type PlayResult struct {
	Rounds   int    `json:"rounds"`
	Solution Craft  `json:"-"`
	Steps    []Step `json:"steps"`
}

// Play guesses until the oracle answers all green or one candidate is left, in
// which case one more confirming guess is counted. openers replace the
// heuristic for the first rounds.
func (s *Solver) Play(answers []Craft, oracle Oracle, openers []Craft) (PlayResult, error) {
	var res PlayResult
	if err := s.checkPools(answers); err != nil {
		return res, err
	}

	pool := answers
	for round := 1; ; round++ {
		if len(pool) == 1 {
			res.Rounds = round
			res.Solution = pool[0]
			res.Steps = append(res.Steps, Step{Round: round, Pool: 1, Remaining: 1, Guess: pool[0], Hint: AllGreen})
			s.log.Info().Int("round", round).Str("guess", FormatCraftInline(s.vocab, pool[0])).Msg("confirm")
			return res, nil
		}

		var guess Craft
		var part Partition
		opener := round <= len(openers)
		if opener {
			guess = openers[round-1]
			part = PartitionBy(guess, pool)
		} else {
			guess, part = MostInformation(pool, s.guesses)
		}

		hint, err := oracle.Hint(guess)
		if err != nil {
			return res, fmt.Errorf("round %d: oracle: %w", round, err)
		}
		if hint.Solved() {
			res.Rounds = round
			res.Solution = guess
			res.Steps = append(res.Steps, Step{Round: round, Pool: len(pool), Remaining: 1, Guess: guess, Hint: hint})
			s.log.Info().Int("round", round).Str("guess", FormatCraftInline(s.vocab, guess)).Msg("solved")
			return res, nil
		}

		next, ok := part.Get(hint)
		if !ok {
			return res, fmt.Errorf("round %d: hint %s for %s: %w",
				round, hint, FormatCraftInline(s.vocab, guess), ErrInconsistentHint)
		}
		res.Steps = append(res.Steps, Step{Round: round, Pool: len(pool), Remaining: len(next), Guess: guess, Hint: hint})
		s.log.Info().
			Int("round", round).
			Int("from", len(pool)).
			Int("to", len(next)).
			Stringer("hint", hint).
			Str("guess", FormatCraftInline(s.vocab, guess)).
			Bool("opener", opener).
			Msg("narrowed")

		if !opener && len(next) == len(pool) {
			return res, fmt.Errorf("round %d, %d answers: %w", round, len(pool), ErrNoProgress)
		}
		pool = next
	}
}

// BenchmarkResult summarises greedy play against every possible secret.
type BenchmarkResult struct {
	Games       int         `json:"games"`
	Worst       int         `json:"worst"`
	Mean        float64     `json:"mean"`
	WorstSecret Craft       `json:"-"`
	Histogram   map[int]int `json:"histogram"`
}

// Benchmark plays one game per answer with a secret oracle.
func (s *Solver) Benchmark(answers []Craft, openers []Craft) (BenchmarkResult, error) {
	res := BenchmarkResult{Histogram: make(map[int]int)}
	if err := s.checkPools(answers); err != nil {
		return res, err
	}
	quiet := *s
	quiet.log = s.log.Level(zerolog.WarnLevel)

	total := 0
	for _, secret := range answers {
		r, err := quiet.Play(answers, SecretOracle{Secret: secret}, openers)
		if err != nil {
			return res, fmt.Errorf("secret %s: %w", FormatCraftInline(s.vocab, secret), err)
		}
		if r.Solution != secret {
			return res, fmt.Errorf("secret %s: identified %s instead",
				FormatCraftInline(s.vocab, secret), FormatCraftInline(s.vocab, r.Solution))
		}
		res.Games++
		res.Histogram[r.Rounds]++
		total += r.Rounds
		if r.Rounds > res.Worst {
			res.Worst = r.Rounds
			res.WorstSecret = secret
		}
		s.log.Debug().Str("secret", FormatCraftInline(s.vocab, secret)).Int("rounds", r.Rounds).Msg("benchmark game")
	}
	res.Mean = float64(total) / float64(res.Games)
	s.log.Info().Int("games", res.Games).Int("worst", res.Worst).Float64("mean", res.Mean).Msg("benchmark")
	return res, nil
}
