// Package prompt asks the user for missing command input.
package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrNonInteractive is returned when a prompt is needed in non-interactive mode.
	ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")
	// ErrCancelled is returned when the user aborts a prompt (ctrl+c, esc).
	ErrCancelled = errors.New("cancelled")
)

// Prompter asks for the input a command couldn't get from its arguments.
type Prompter interface {
	// Select returns one of options.
	Select(title string, options []string) (string, error)

	// Input returns free text. validate may be nil.
	Input(title, defaultValue string, validate func(string) error) (string, error)

	// Confirm returns a yes/no answer.
	Confirm(title string, defaultValue bool) (bool, error)
}

// NoopPrompter fails every prompt, naming what was asked for so the user
// knows which flag or argument to pass instead.
type NoopPrompter struct{}

func (p *NoopPrompter) Select(title string, options []string) (string, error) {
	return "", nonInteractive(title)
}

func (p *NoopPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	return "", nonInteractive(title)
}

func (p *NoopPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return false, nonInteractive(title)
}

func nonInteractive(title string) error {
	return fmt.Errorf("%w (needed: %s)", ErrNonInteractive, title)
}
