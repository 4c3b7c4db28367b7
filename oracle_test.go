package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
)

func TestSecretOracle(t *testing.T) {
	v := testVocab(t)
	secret := mustCraft(t, v, "_,stick,_,_,stick,_,_,_,_")
	guess := mustCraft(t, v, "stick,stick,_,_,_,_,_,_,_")
	got, err := SecretOracle{Secret: secret}.Hint(guess)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if got != Score(secret, guess) {
		t.Errorf("Hint = %s, want %s", got, Score(secret, guess))
	}
}

func TestPromptOracle(t *testing.T) {
	v := testVocab(t)
	guess := mustCraft(t, v, "oak_planks,_,_,oak_planks,_,_,_,_,_")

	var message string
	o := &PromptOracle{Vocab: v, ask: func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		message = p.(*survey.Input).Message
		*response.(*string) = " gxx yxx xxx \n"
		return nil
	}}
	got, err := o.Hint(guess)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if want := mustHint(t, "GXXYXXXXX"); got != want {
		t.Errorf("Hint = %s, want %s", got, want)
	}
	if !strings.Contains(message, "oak_planks") {
		t.Errorf("prompt does not show the guess:\n%s", message)
	}
}

func TestPromptOracleError(t *testing.T) {
	v := testVocab(t)
	stop := errors.New("interrupt")
	o := &PromptOracle{Vocab: v, ask: func(survey.Prompt, interface{}, ...survey.AskOpt) error {
		return stop
	}}
	if _, err := o.Hint(Craft{}); !errors.Is(err, stop) {
		t.Errorf("err = %v, want the prompt error", err)
	}
}
