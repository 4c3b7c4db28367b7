//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `Usage: craftle-optimizer [flags] [recipe-dir [tag-dir]]

Positional arguments:
  recipe-dir   Directory of recipe JSON files (default ./recipe/)
  tag-dir      Directory of item tag JSON files (default ./tags/item/)

Modes:
  (default)      worst-case round count over every answer
  -greedy        greedy play: against -secret, a human (-interactive), or every answer
  -cover         ingredient makeup and greedy set cover

Flags:
`

// openerFlag collects repeated -opener values.
type openerFlag []string

func (f *openerFlag) String() string { return strings.Join(*f, " ") }

func (f *openerFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Log per-recipe detail to stderr")
	greedy := flag.Bool("greedy", false, "Play greedily instead of computing the worst case")
	secret := flag.String("secret", "", "Secret craft for -greedy, nine comma-separated items")
	interactive := flag.Bool("interactive", false, "Ask for hints on the terminal in -greedy mode")
	cover := flag.Bool("cover", false, "Print the ingredient cover report")
	memo := flag.Bool("memo", false, "Cache worst-case results by pool content")
	var openers openerFlag
	flag.Var(&openers, "opener", "Fixed opening guess for -greedy (repeatable)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	Verbose = *verbose
	setupLogging(Verbose)

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	args := flag.Args()
	if len(args) > 2 {
		flag.Usage()
		os.Exit(1)
	}
	if len(args) >= 1 {
		cfg.RecipeDir = args[0]
	}
	if len(args) == 2 {
		cfg.TagDir = args[1]
	}
	if *memo {
		cfg.Memoize = true
	}
	cfg.Openers = append(cfg.Openers, openers...)

	input, err := LoadRawData(cfg)
	if err != nil {
		fatal(err)
	}
	log.Info().
		Int("total", input.Stats.Total).
		Int("crafting", input.Stats.Crafting).
		Int("filtered", input.Stats.Valid).
		Int("vocabulary", input.Vocab.Len()).
		Msg("loaded recipes")

	if *cover {
		fmt.Print(FormatCover(input.Vocab, IngredientCover(input.Recipes, input.Vocab)))
		return
	}

	pools := input.BuildPools(&cfg)
	log.Info().Int("guesses", len(pools.Guesses)).Int("answers", len(pools.Answers)).Msg("built pools")

	var rep Report
	switch {
	case !*greedy:
		rep, err = runWorstCase(input, pools, &cfg, log.Logger)
	case *secret != "":
		var c Craft
		c, err = ParseCraft(input.Vocab, *secret)
		if err != nil {
			fatal(err)
		}
		rep, err = runPlay(input, pools, &cfg, SecretOracle{Secret: c}, log.Logger)
	case *interactive:
		rep, err = runPlay(input, pools, &cfg, NewPromptOracle(input.Vocab), log.Logger)
	default:
		rep, err = runBenchmark(input, pools, &cfg, log.Logger)
	}
	if err != nil {
		fatal(err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fatal(err)
		}
		return
	}
	fmt.Print(FormatReport(rep))
}
