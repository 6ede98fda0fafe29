package tui

import (
	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode represents whether keys go to the search box or the browser.
type InputMode int

const (
	NormalMode InputMode = iota
	SearchMode
)

// ReloadFunc re-reads the catalogs into the browser.
type ReloadFunc func(b *browse.Browser) error

// Options configures a Model.
type Options struct {
	Title  string
	Copier *service.CopyService
	Reload ReloadFunc // Optional; the reload key is a no-op without it
}

// Model is the terminal palette browser.
// The browser is shared by pointer, so copies of Model see the same state.
type Model struct {
	browser *browse.Browser
	copier  *service.CopyService
	reload  ReloadFunc
	title   string

	keys  KeyMap
	help  help.Model
	input textinput.Model

	inputMode InputMode
	selected  int // Index of the selected palette on the current page

	width  int
	height int

	showHelp bool

	// Status message for temporary feedback
	statusMessage string
	statusIsError bool
}

// clearStatusMsg clears the status message after a delay.
type clearStatusMsg struct{}

// NewModel creates a browser model.
func NewModel(b *browse.Browser, opts Options) Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search by name, tag or hex"
	input.SetValue(b.Query())

	title := opts.Title
	if title == "" {
		title = "swatch"
	}

	return Model{
		browser: b,
		copier:  opts.Copier,
		reload:  opts.Reload,
		title:   title,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Browser returns the underlying browser.
func (m Model) Browser() *browse.Browser {
	return m.browser
}

// Selected returns the selected palette index on the current page.
func (m Model) Selected() int {
	return m.selected
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.statusMessage
}

// Mode returns the current input mode.
func (m Model) Mode() InputMode {
	return m.inputMode
}

// HelpVisible reports whether the help overlay is shown.
func (m Model) HelpVisible() bool {
	return m.showHelp
}
