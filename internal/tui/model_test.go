package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// testHelper drives a Model through Update without running a program.
type testHelper struct {
	t         *testing.T
	model     Model
	clipboard *testutil.FakeClipboard
}

// newTestHelper builds a browser over 7 "Ocean" and 5 "Ember" palettes with page size 5.
func newTestHelper(t *testing.T, opts ...func(*Options)) *testHelper {
	t.Helper()
	var palettes []*model.Palette
	for i := 1; i <= 7; i++ {
		palettes = append(palettes, testutil.TestPalette(fmt.Sprintf("Ocean %d", i), "#0077be", "#00a8e8", "#90e0ef"))
	}
	for i := 1; i <= 5; i++ {
		palettes = append(palettes, testutil.TestPalette(fmt.Sprintf("Ember %d", i), "#ff4500", "#ff8c00"))
	}

	clipboard := &testutil.FakeClipboard{}
	o := Options{Copier: service.NewCopyService(clipboard)}
	for _, fn := range opts {
		fn(&o)
	}

	h := &testHelper{
		t:         t,
		model:     NewModel(browse.New(palettes, 5), o),
		clipboard: clipboard,
	}
	return h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
}

func (h *testHelper) send(msg tea.Msg) *testHelper {
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

func (h *testHelper) key(keyType tea.KeyType) *testHelper {
	return h.send(tea.KeyMsg{Type: keyType})
}

func (h *testHelper) runes(s string) *testHelper {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return h
}

func (h *testHelper) search(query string) *testHelper {
	h.runes("/")
	// Clear any prefilled query
	for range h.model.input.Value() {
		h.key(tea.KeyBackspace)
	}
	return h.runes(query).key(tea.KeyEnter)
}

func TestModel_InitialState(t *testing.T) {
	h := newTestHelper(t)
	b := h.model.Browser()

	if b.Len() != 12 || b.PageCurrent() != 0 {
		t.Errorf("Expected 12 palettes on page 0, got %d on page %d", b.Len(), b.PageCurrent())
	}
	if h.model.Mode() != NormalMode {
		t.Error("Expected normal mode")
	}
}

func TestModel_SearchSubmit(t *testing.T) {
	h := newTestHelper(t)
	h.runes("l") // move to page 1 first

	h.search("ember")

	b := h.model.Browser()
	if b.Query() != "ember" {
		t.Errorf("Expected query 'ember', got %q", b.Query())
	}
	if b.Len() != 5 {
		t.Errorf("Expected 5 matches, got %d", b.Len())
	}
	if b.PageCurrent() != 0 {
		t.Errorf("Expected search to reset to page 0, got %d", b.PageCurrent())
	}
	if h.model.Mode() != NormalMode {
		t.Error("Expected normal mode after submit")
	}
}

func TestModel_EmptySearchIgnored(t *testing.T) {
	h := newTestHelper(t)
	h.search("ocean")
	h.runes("l")

	h.search("   ")

	b := h.model.Browser()
	if b.Query() != "ocean" || b.PageCurrent() != 1 || b.Len() != 7 {
		t.Errorf("Empty search should be a no-op, got query %q page %d len %d",
			b.Query(), b.PageCurrent(), b.Len())
	}
}

func TestModel_SearchModeCapturesKeys(t *testing.T) {
	h := newTestHelper(t)

	h.runes("/q1")

	if h.model.Mode() != SearchMode {
		t.Fatal("Expected search mode")
	}
	if h.model.input.Value() != "q1" {
		t.Errorf("Expected typed text in input, got %q", h.model.input.Value())
	}
	if h.clipboard.Writes != 0 {
		t.Error("Digits typed into the search box must not copy")
	}
}

func TestModel_EscCancelsInput(t *testing.T) {
	h := newTestHelper(t)

	h.runes("/ocean").key(tea.KeyEsc)

	if h.model.Mode() != NormalMode {
		t.Error("Expected normal mode after esc")
	}
	if h.model.Browser().Query() != "" {
		t.Errorf("Cancelled input should not search, got %q", h.model.Browser().Query())
	}
}

func TestModel_EscClearsSearch(t *testing.T) {
	h := newTestHelper(t)
	h.search("ocean")

	h.key(tea.KeyEsc)

	b := h.model.Browser()
	if b.Query() != "" || b.Len() != 12 {
		t.Errorf("Expected full catalog after esc, got query %q len %d", b.Query(), b.Len())
	}
}

func TestModel_PageNavigation(t *testing.T) {
	h := newTestHelper(t)
	h.search("ocean") // 7 matches: pages of 5 and 2

	steps := []struct {
		name string
		key  tea.KeyMsg
		want int
	}{
		{"prev at first page", tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{"next", tea.KeyMsg{Type: tea.KeyRight}, 1},
		{"next at last page", tea.KeyMsg{Type: tea.KeyRight}, 1},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, 1},
		{"prev", tea.KeyMsg{Type: tea.KeyLeft}, 0},
	}

	for _, step := range steps {
		h.send(step.key)
		if got := h.model.Browser().PageCurrent(); got != step.want {
			t.Errorf("%s: expected page %d, got %d", step.name, step.want, got)
		}
	}
}

func TestModel_EdgeMoveShowsStatus(t *testing.T) {
	h := newTestHelper(t)

	h.key(tea.KeyLeft)

	if !strings.Contains(h.model.Status(), "first page") {
		t.Errorf("Expected first page status, got %q", h.model.Status())
	}

	h.send(clearStatusMsg{})
	if h.model.Status() != "" {
		t.Errorf("Expected status cleared, got %q", h.model.Status())
	}
}

func TestModel_Selection(t *testing.T) {
	h := newTestHelper(t)

	h.key(tea.KeyUp)
	if h.model.Selected() != 0 {
		t.Errorf("Up at top should stay at 0, got %d", h.model.Selected())
	}

	for i := 0; i < 10; i++ {
		h.key(tea.KeyDown)
	}
	if h.model.Selected() != 4 {
		t.Errorf("Selection should stop at last card (4), got %d", h.model.Selected())
	}

	h.key(tea.KeyRight)
	if h.model.Selected() != 0 {
		t.Errorf("Page change should reset selection, got %d", h.model.Selected())
	}
}

func TestModel_CopySwatch(t *testing.T) {
	h := newTestHelper(t)
	h.key(tea.KeyDown) // Ocean 2

	h.runes("3")

	if h.clipboard.Text != "#90E0EF" {
		t.Errorf("Expected '#90E0EF' on clipboard, got %q", h.clipboard.Text)
	}
	if !strings.Contains(h.model.Status(), "#90E0EF") {
		t.Errorf("Expected status to mention the copied color, got %q", h.model.Status())
	}
}

func TestModel_CopySwatchOutOfRange(t *testing.T) {
	h := newTestHelper(t)
	h.search("ember") // two colors each

	h.runes("5")

	if h.clipboard.Writes != 0 {
		t.Error("Expected no clipboard write for a missing swatch")
	}
	if !h.model.statusIsError {
		t.Error("Expected an error status")
	}
}

func TestModel_CopyAll(t *testing.T) {
	h := newTestHelper(t)
	h.search("ember")

	h.runes("c")

	if h.clipboard.Text != "#FF4500 #FF8C00" {
		t.Errorf("Expected both colors on clipboard, got %q", h.clipboard.Text)
	}
}

func TestModel_CopyClipboardError(t *testing.T) {
	h := newTestHelper(t)
	h.clipboard.Err = errors.New("no display")

	h.runes("1")

	if !strings.Contains(h.model.Status(), "no display") || !h.model.statusIsError {
		t.Errorf("Expected error status, got %q", h.model.Status())
	}
}

func TestModel_NoResultsView(t *testing.T) {
	h := newTestHelper(t)
	h.search("zzz")

	view := h.model.View()
	if !strings.Contains(view, "No palettes match") {
		t.Error("Expected empty-state placeholder")
	}
	if !strings.Contains(view, "page 1 / 1") {
		t.Error("Expected footer on empty results")
	}

	// Copy on an empty page does nothing
	h.runes("1")
	if h.clipboard.Writes != 0 {
		t.Error("Expected no copy on an empty page")
	}
}

func TestModel_ViewShowsCardsAndFooter(t *testing.T) {
	h := newTestHelper(t)

	view := h.model.View()
	for _, want := range []string{"Ocean 1", "Ocean 5", "#0077BE", "★★★☆☆", "page 1 / 3", "12 of 12 palettes"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
	if strings.Contains(view, "Ocean 6") {
		t.Error("Page 1 should not show Ocean 6")
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	h := newTestHelper(t)

	h.runes("?")
	if !h.model.HelpVisible() {
		t.Fatal("Expected help to be visible")
	}
	if !strings.Contains(h.model.View(), "copy swatch") {
		t.Error("Expected help overlay to list bindings")
	}

	// Other keys are swallowed while help is open
	h.key(tea.KeyRight)
	if h.model.Browser().PageCurrent() != 0 {
		t.Error("Keys should not reach the browser while help is open")
	}

	h.runes("?")
	if h.model.HelpVisible() {
		t.Error("Expected help to close")
	}
}

func TestModel_Quit(t *testing.T) {
	h := newTestHelper(t)

	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestModel_Reload(t *testing.T) {
	calls := 0
	h := newTestHelper(t, func(o *Options) {
		o.Reload = func(b *browse.Browser) error {
			calls++
			b.SetCatalog(b.Catalog()[:3])
			return nil
		}
	})
	for i := 0; i < 4; i++ {
		h.key(tea.KeyDown)
	}

	h.runes("r")

	if calls != 1 {
		t.Fatalf("Expected reload to be called once, got %d", calls)
	}
	if h.model.Selected() != 2 {
		t.Errorf("Selection should be clamped to the shorter page, got %d", h.model.Selected())
	}
	if h.model.Browser().Len() != 3 {
		t.Errorf("Expected 3 palettes after reload, got %d", h.model.Browser().Len())
	}
}
