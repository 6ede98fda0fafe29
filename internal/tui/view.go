package tui

import (
	"fmt"
	"strings"

	"github.com/amterp/swatch/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		// Recreated each render so the background reflects the latest state
		helpOverlay := overlay.New(
			&helpViewModel{model: &m},
			&mainViewModel{model: &m},
			overlay.Center, // horizontal position
			overlay.Center, // vertical position
			0,
			0,
		)
		return helpOverlay.View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render(m.title)
	if m.inputMode == SearchMode {
		return title + "\n" + m.input.View()
	}
	if q := m.browser.Query(); q != "" {
		return title + "\n" + mutedStyle.Render("/ "+q)
	}
	return title + "\n" + mutedStyle.Render("press / to search")
}

func (m Model) renderContent() string {
	page := m.browser.Page()
	if len(page) == 0 {
		if m.browser.Query() == "" {
			return emptyStyle.Render("No palettes yet. Add one with 'swatch add'.")
		}
		return emptyStyle.Render(fmt.Sprintf("No palettes match %q. Press esc to clear.", m.browser.Query()))
	}

	cards := make([]string, len(page))
	for i, p := range page {
		cards[i] = renderCard(p, i == m.selected, m.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders a palette's name, rating, reference and swatches.
func renderCard(p *model.Palette, selected bool, width int) string {
	ref := p.Slug
	if p.Catalog != "" {
		ref = p.Catalog + "/" + p.Slug
	}
	title := strings.Join([]string{
		nameStyle.Render(p.Name),
		renderStars(p.Favorites),
		refStyle.Render(ref),
	}, "  ")

	swatches := make([]string, 0, model.MaxSwatches+1)
	for i, hex := range p.Swatches() {
		label := fmt.Sprintf("%d %s", i+1, model.DisplayHex(hex))
		swatches = append(swatches, swatchStyle(hex).Render(label))
	}
	if extra := len(p.Colors) - len(p.Swatches()); extra > 0 {
		swatches = append(swatches, mutedStyle.Render(fmt.Sprintf("+%d", extra)))
	}
	row := strings.Join(swatches, " ")

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(title + "\n" + row)
}

func renderStars(favorites int) string {
	favorites = max(0, min(favorites, model.MaxFavorites))
	stars := []rune(model.Stars(favorites))
	return starStyle.Render(string(stars[:favorites])) + mutedStyle.Render(string(stars[favorites:]))
}

func (m Model) renderFooter() string {
	pages := max(m.browser.Pages(), 1)
	indicator := pageStyle.Render(fmt.Sprintf("page %d / %d", m.browser.PageCurrent()+1, pages))
	counts := fmt.Sprintf("%d of %d palettes", m.browser.Len(), len(m.browser.Catalog()))

	line := indicator + "  " + counts
	if m.statusMessage != "" {
		style := statusOKStyle
		if m.statusIsError {
			style = statusErrStyle
		}
		line += "  " + style.Render(m.statusMessage)
	}
	return footerStyle.Render(line) + "\n" + m.help.View(m.keys)
}

// selectedPalette returns the highlighted palette, or nil on an empty page.
func (m Model) selectedPalette() *model.Palette {
	page := m.browser.Page()
	if m.selected < 0 || m.selected >= len(page) {
		return nil
	}
	return page[m.selected]
}

// mainViewModel wraps the main UI for use as overlay background.
type mainViewModel struct {
	model *Model
}

func (v *mainViewModel) Init() tea.Cmd { return nil }

func (v *mainViewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *mainViewModel) View() string { return v.model.renderMain() }

// helpViewModel renders the full key reference shown over the browser.
type helpViewModel struct {
	model *Model
}

func (v *helpViewModel) Init() tea.Cmd { return nil }

func (v *helpViewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *helpViewModel) View() string {
	title := helpTitleStyle.Render("Keys")
	body := v.model.help.FullHelpView(v.model.keys.FullHelp())
	hint := mutedStyle.Render("press ? or esc to close")
	return helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, "", hint))
}
