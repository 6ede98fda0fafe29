// Package browse holds the stateful search and pagination core shared by
// the CLI, the terminal browser and the HTTP API.
//
// A Browser is single-owner: callers that share one across goroutines must
// serialize access themselves.
package browse

import "github.com/amterp/swatch/internal/model"

// Browser owns a palette catalog, the filtered view produced by the last
// search and the pagination state over that view.
//
// Invariants:
//   - filtered is an ordered subsequence of catalog
//   - 0 <= PageCurrent() <= LastPage() <= PageCount()
type Browser struct {
	catalog     []*model.Palette
	filtered    []*model.Palette
	query       string
	tokens      []string
	pageCurrent int
	pageSize    int
	match       MatchFunc
}

// Option configures a Browser.
type Option func(*Browser)

// WithMatcher replaces the default match predicate.
func WithMatcher(fn MatchFunc) Option {
	return func(b *Browser) {
		if fn != nil {
			b.match = fn
		}
	}
}

// New creates a Browser over the catalog. The filtered view starts as the
// whole catalog. A non-positive pageSize falls back to model.DefaultPageSize.
func New(catalog []*model.Palette, pageSize int, opts ...Option) *Browser {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	b := &Browser{
		catalog:  cloneSlice(catalog),
		pageSize: pageSize,
		match:    MatchTokens,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.filtered = b.catalog
	return b
}

// Search narrows the filtered view to palettes matching text and moves to
// the first page. Blank text is ignored: nothing changes and false is returned.
func (b *Browser) Search(text string) bool {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return false
	}
	b.query = text
	b.tokens = tokens
	b.filtered = b.filter()
	b.pageCurrent = 0
	return true
}

// Clear drops the active query and shows the whole catalog from page one.
func (b *Browser) Clear() {
	b.query = ""
	b.tokens = nil
	b.filtered = b.catalog
	b.pageCurrent = 0
}

// SetCatalog swaps the catalog, re-applying the active query.
// The current page is kept when still reachable, otherwise clamped.
func (b *Browser) SetCatalog(catalog []*model.Palette) {
	b.catalog = cloneSlice(catalog)
	if len(b.tokens) == 0 {
		b.filtered = b.catalog
	} else {
		b.filtered = b.filter()
	}
	b.pageCurrent = b.clamp(b.pageCurrent)
}

func (b *Browser) filter() []*model.Palette {
	out := make([]*model.Palette, 0, len(b.catalog))
	for _, p := range b.catalog {
		if b.match(p, b.tokens) {
			out = append(out, p)
		}
	}
	return out
}

// Query returns the text of the active search, "" when showing everything.
func (b *Browser) Query() string { return b.query }

// Catalog returns a copy of the full catalog.
func (b *Browser) Catalog() []*model.Palette { return cloneSlice(b.catalog) }

// Filtered returns a copy of the filtered view.
func (b *Browser) Filtered() []*model.Palette { return cloneSlice(b.filtered) }

// Len is the size of the filtered view.
func (b *Browser) Len() int { return len(b.filtered) }

// Empty reports the "no results" state.
func (b *Browser) Empty() bool { return len(b.filtered) == 0 }

// PageSize returns the fixed number of palettes per page.
func (b *Browser) PageSize() int { return b.pageSize }

// PageCurrent returns the zero-based index of the current page.
func (b *Browser) PageCurrent() int { return b.pageCurrent }

// PageCount is len(filtered) / pageSize, truncated.
// When the filtered length isn't a multiple of the page size, the short
// trailing page has index PageCount().
func (b *Browser) PageCount() int {
	return len(b.filtered) / b.pageSize
}

// LastPage is the index of the last non-empty page (0 when empty).
// It equals PageCount() except when the filtered length is an exact
// multiple of the page size.
func (b *Browser) LastPage() int {
	if len(b.filtered) == 0 {
		return 0
	}
	return (len(b.filtered) - 1) / b.pageSize
}

// Pages is the number of non-empty pages, for "page X / Y" displays.
func (b *Browser) Pages() int {
	if len(b.filtered) == 0 {
		return 0
	}
	return b.LastPage() + 1
}

// Page returns the palettes on the current page.
func (b *Browser) Page() []*model.Palette {
	return b.PageAt(b.pageCurrent)
}

// PageAt returns the palettes on page i, empty when i is out of range.
func (b *Browser) PageAt(i int) []*model.Palette {
	start := i * b.pageSize
	if i < 0 || start >= len(b.filtered) {
		return []*model.Palette{}
	}
	end := start + b.pageSize
	if end > len(b.filtered) {
		end = len(b.filtered)
	}
	return cloneSlice(b.filtered[start:end])
}

// First moves to page 0. Returns whether the page changed.
func (b *Browser) First() bool { return b.GoTo(0) }

// Prev moves back one page, stopping at 0.
func (b *Browser) Prev() bool { return b.GoTo(b.pageCurrent - 1) }

// Next moves forward one page, stopping at LastPage().
func (b *Browser) Next() bool { return b.GoTo(b.pageCurrent + 1) }

// Last moves to LastPage(). When the filtered length is an exact multiple
// of the page size this is PageCount()-1, never the empty page PageCount().
func (b *Browser) Last() bool { return b.GoTo(b.LastPage()) }

// GoTo moves to page i, clamped to [0, LastPage()]. No wraparound.
func (b *Browser) GoTo(i int) bool {
	i = b.clamp(i)
	if i == b.pageCurrent {
		return false
	}
	b.pageCurrent = i
	return true
}

func (b *Browser) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if last := b.LastPage(); i > last {
		return last
	}
	return i
}

// View is an immutable snapshot of the browser, suitable for rendering.
type View struct {
	Query     string           `json:"query"`
	Page      int              `json:"page"`
	PageCount int              `json:"page_count"`
	Pages     int              `json:"pages"`
	PageSize  int              `json:"page_size"`
	Matches   int              `json:"matches"`
	Total     int              `json:"total"`
	Palettes  []*model.Palette `json:"palettes"`
}

// Snapshot captures the current state.
func (b *Browser) Snapshot() View {
	return View{
		Query:     b.query,
		Page:      b.pageCurrent,
		PageCount: b.PageCount(),
		Pages:     b.Pages(),
		PageSize:  b.pageSize,
		Matches:   len(b.filtered),
		Total:     len(b.catalog),
		Palettes:  b.Page(),
	}
}

func cloneSlice(in []*model.Palette) []*model.Palette {
	out := make([]*model.Palette, len(in))
	copy(out, in)
	return out
}
