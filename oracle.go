package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Oracle answers a guess with the hint for the hidden secret.
type Oracle interface {
	Hint(guess Craft) (Hint, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(guess Craft) (Hint, error)

func (f OracleFunc) Hint(guess Craft) (Hint, error) { return f(guess) }

// SecretOracle scores guesses against a known secret.
type SecretOracle struct {
	Secret Craft
}

func (o SecretOracle) Hint(guess Craft) (Hint, error) {
	return Score(o.Secret, guess), nil
}

// askFunc matches survey.AskOne.
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// PromptOracle shows each guess and asks a human to type the colours they see.
type PromptOracle struct {
	Vocab *Vocabulary
	ask   askFunc
}

// NewPromptOracle asks on the terminal.
func NewPromptOracle(vocab *Vocabulary) *PromptOracle {
	return &PromptOracle{Vocab: vocab, ask: survey.AskOne}
}

func (o *PromptOracle) Hint(guess Craft) (Hint, error) {
	var answer string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Guess:\n%s\nColours (G green, Y yellow, X gray, row-major):", FormatCraft(o.Vocab, guess)),
		Help:    "Nine letters, one per slot left to right, top to bottom. Empty slots are X. Spaces are ignored.",
	}
	validate := func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text")
		}
		_, err := ParseHint(s)
		return err
	}
	if err := o.ask(prompt, &answer, survey.WithValidator(validate)); err != nil {
		return Hint{}, fmt.Errorf("prompt: %w", err)
	}
	return ParseHint(strings.TrimSpace(answer))
}
