package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
)

// filterThreshold is the option count above which Select offers type-to-filter.
const filterThreshold = 8

// HuhPrompter runs each prompt as a single-field huh form.
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter creates a prompter with the Charm theme. Setting
// ACCESSIBLE in the environment switches huh to plain line-based prompts
// for screen readers.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{
		theme:      huh.ThemeCharm(),
		accessible: os.Getenv("ACCESSIBLE") != "",
	}
}

func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	var result string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Filtering(len(options) > filterThreshold).
		Value(&result)
	return result, p.run(field)
}

func (p *HuhPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	result := defaultValue
	field := huh.NewInput().
		Title(title).
		Value(&result)
	if validate != nil {
		field = field.Validate(validate)
	}
	return result, p.run(field)
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	result := defaultValue
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&result)
	return result, p.run(field)
}

func (p *HuhPrompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
