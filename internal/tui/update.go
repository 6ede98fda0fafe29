package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/amterp/swatch/internal/logger"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case tea.KeyMsg:
		// If help is showing, only keys that close it do anything
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		if m.inputMode == SearchMode {
			return m.handleSearchInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.inputMode = SearchMode
		m.input.SetValue(m.browser.Query())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Esc):
		if m.browser.Query() == "" {
			return m, nil
		}
		m.browser.Clear()
		m.input.SetValue("")
		m.selected = 0
		return m.setStatus("Search cleared", false)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.browser.Page())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		return m.movePage(m.browser.Prev(), "Already on the first page")

	case key.Matches(msg, m.keys.Next):
		return m.movePage(m.browser.Next(), "Already on the last page")

	case key.Matches(msg, m.keys.First):
		return m.movePage(m.browser.First(), "")

	case key.Matches(msg, m.keys.Last):
		return m.movePage(m.browser.Last(), "")

	case key.Matches(msg, m.keys.Copy):
		// Keys are "1".."5"
		return m.copySwatch(int(msg.Runes[0] - '1'))

	case key.Matches(msg, m.keys.CopyAll):
		return m.copyAll()

	case key.Matches(msg, m.keys.Reload):
		return m.reloadCatalogs()
	}

	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.inputMode = NormalMode
		m.input.Blur()
		query := m.input.Value()
		if !m.browser.Search(query) {
			// Empty input leaves the current results alone
			m.input.SetValue(m.browser.Query())
			return m, nil
		}
		m.selected = 0
		logger.Debug("tui search", "query", query, "matches", m.browser.Len())
		return m, nil

	case key.Matches(msg, m.keys.Esc):
		m.inputMode = NormalMode
		m.input.Blur()
		m.input.SetValue(m.browser.Query())
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) movePage(changed bool, atEdge string) (tea.Model, tea.Cmd) {
	if !changed {
		if atEdge != "" && !m.browser.Empty() {
			return m.setStatus(atEdge, false)
		}
		return m, nil
	}
	m.selected = 0
	return m, nil
}

func (m Model) copySwatch(index int) (tea.Model, tea.Cmd) {
	p := m.selectedPalette()
	if p == nil || m.copier == nil {
		return m, nil
	}
	if index >= len(p.Swatches()) {
		return m.setStatus(fmt.Sprintf("%s has no swatch %d", p.Name, index+1), true)
	}
	text, err := m.copier.CopyColor(p, index)
	if err != nil {
		logger.Warn("copy failed", "palette", p.Name, "index", index, "error", err)
		return m.setStatus("Failed to copy: "+err.Error(), true)
	}
	return m.setStatus("Copied "+text, false)
}

func (m Model) copyAll() (tea.Model, tea.Cmd) {
	p := m.selectedPalette()
	if p == nil || m.copier == nil {
		return m, nil
	}
	text, err := m.copier.CopyAll(p)
	if err != nil {
		logger.Warn("copy failed", "palette", p.Name, "error", err)
		return m.setStatus("Failed to copy: "+err.Error(), true)
	}
	return m.setStatus(fmt.Sprintf("Copied %d colors", len(strings.Fields(text))), false)
}

func (m Model) reloadCatalogs() (tea.Model, tea.Cmd) {
	if m.reload == nil {
		return m, nil
	}
	if err := m.reload(m.browser); err != nil {
		logger.Warn("reload failed", "error", err)
		return m.setStatus("Reload failed: "+err.Error(), true)
	}
	m.selected = min(m.selected, max(len(m.browser.Page())-1, 0))
	return m.setStatus("Catalogs reloaded", false)
}

func (m Model) setStatus(text string, isError bool) (tea.Model, tea.Cmd) {
	m.statusMessage = text
	m.statusIsError = isError
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
