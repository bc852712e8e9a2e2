package prompt

import (
	"context"
	"errors"
)

var (
	// ErrAborted is returned when the operator presses Ctrl+C or Esc at a prompt,
	// or when the input stream ends before the question is answered.
	ErrAborted = errors.New("prompt aborted")
	// ErrNoChoices is returned when a question has no record to choose from.
	ErrNoChoices = errors.New("nothing to choose from")
)

// Prompter asks a single question and blocks until it is answered.
type Prompter interface {
	Select(ctx context.Context, message string, choices []Choice) (Choice, error)
	Input(ctx context.Context, message string) (string, error)
	// Number re-asks until the answer parses as a number.
	Number(ctx context.Context, message string) (float64, error)
}
