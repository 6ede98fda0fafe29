package browse

import (
	"fmt"
	"testing"

	"github.com/amterp/swatch/internal/model"
)

// testCatalog returns n palettes; the first `warm` of them are named "Warm N",
// the rest "Cool N".
func testCatalog(n, warm int) []*model.Palette {
	out := make([]*model.Palette, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Cool %d", i)
		if i < warm {
			name = fmt.Sprintf("Warm %d", i)
		}
		out[i] = &model.Palette{
			ID:     fmt.Sprintf("p%d", i),
			Name:   name,
			Colors: []string{fmt.Sprintf("#%02x0000", i*10)},
		}
	}
	return out
}

func contains(list []*model.Palette, p *model.Palette) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func TestNew_StartsWithWholeCatalog(t *testing.T) {
	b := New(testCatalog(12, 7), 5)

	if b.Len() != 12 {
		t.Errorf("Expected 12 palettes in view, got %d", b.Len())
	}
	if b.PageCurrent() != 0 {
		t.Errorf("Expected page 0, got %d", b.PageCurrent())
	}
	if b.Query() != "" {
		t.Errorf("Expected empty query, got %q", b.Query())
	}
}

func TestNew_DefaultPageSize(t *testing.T) {
	b := New(testCatalog(3, 0), 0)
	if b.PageSize() != model.DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", model.DefaultPageSize, b.PageSize())
	}
}

// 12 palettes, page size 5, 7 matches: page count 1, pages of 5 and 2.
func TestSearch_SevenOfTwelve(t *testing.T) {
	b := New(testCatalog(12, 7), 5)

	if !b.Search("warm") {
		t.Fatal("Expected search to run")
	}
	if b.Len() != 7 {
		t.Fatalf("Expected 7 matches, got %d", b.Len())
	}
	if b.PageCount() != 1 {
		t.Errorf("Expected page count 1, got %d", b.PageCount())
	}
	if got := len(b.Page()); got != 5 {
		t.Errorf("Expected 5 on page 0, got %d", got)
	}

	b.Next()
	if b.PageCurrent() != 1 {
		t.Fatalf("Expected page 1, got %d", b.PageCurrent())
	}
	if got := len(b.Page()); got != 2 {
		t.Errorf("Expected 2 on page 1, got %d", got)
	}
}

func TestSearch_ResetsPage(t *testing.T) {
	b := New(testCatalog(20, 15), 5)
	b.Last()
	if b.PageCurrent() == 0 {
		t.Fatal("Setup failed: expected to move off page 0")
	}

	b.Search("warm")
	if b.PageCurrent() != 0 {
		t.Errorf("Expected search to reset page to 0, got %d", b.PageCurrent())
	}
}

func TestSearch_EmptyIsNoop(t *testing.T) {
	b := New(testCatalog(12, 7), 5)
	b.Search("warm")
	b.Next()

	for _, text := range []string{"", "   ", "\t\n"} {
		if b.Search(text) {
			t.Errorf("Search(%q) should not run", text)
		}
		if b.Query() != "warm" {
			t.Errorf("Search(%q) changed query to %q", text, b.Query())
		}
		if b.Len() != 7 {
			t.Errorf("Search(%q) changed filtered size to %d", text, b.Len())
		}
		if b.PageCurrent() != 1 {
			t.Errorf("Search(%q) changed page to %d", text, b.PageCurrent())
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	b := New(testCatalog(12, 7), 5)
	b.Next()

	if !b.Search("nothing-matches-this") {
		t.Fatal("Expected search to run")
	}
	if !b.Empty() {
		t.Errorf("Expected empty view, got %d", b.Len())
	}
	if b.PageCurrent() != 0 {
		t.Errorf("Expected page 0, got %d", b.PageCurrent())
	}
	if b.PageCount() != 0 || b.Pages() != 0 {
		t.Errorf("Expected no pages, got count=%d pages=%d", b.PageCount(), b.Pages())
	}
	if len(b.Page()) != 0 {
		t.Error("Expected empty page")
	}

	// Navigation on an empty view stays put.
	for name, move := range map[string]func() bool{"first": b.First, "prev": b.Prev, "next": b.Next, "last": b.Last} {
		if move() {
			t.Errorf("%s should be a no-op on empty view", name)
		}
		if b.PageCurrent() != 0 {
			t.Errorf("%s moved to page %d", name, b.PageCurrent())
		}
	}
}

func TestSearch_FilteredMatchesPredicate(t *testing.T) {
	catalog := []*model.Palette{
		{ID: "1", Name: "Sunset Boulevard", Colors: []string{"#ff7e5f", "#feb47b"}},
		{ID: "2", Name: "Deep Ocean", Colors: []string{"#03045e", "#0077b6"}, Tags: []string{"blue", "water"}},
		{ID: "3", Name: "Café Crème", Colors: []string{"#3e2723"}},
		{ID: "4", Name: "Neon Nights", Colors: []string{"#F72585"}},
		{ID: "5", Name: "Ocean Sunset", Colors: []string{"#0077B6", "#ff7e5f"}},
	}

	queries := []string{"sunset", "OCEAN", "cafe", "crème", "ff7e5f", "#0077b6", "f725", "water", "ocean sunset", "deep blue", "zzz", "#"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			b := New(catalog, 2)
			b.Search(q)
			tokens := Tokenize(q)

			filtered := b.Filtered()
			for _, p := range filtered {
				if !MatchTokens(p, tokens) {
					t.Errorf("%q in filtered but doesn't match %q", p.Name, q)
				}
				if !contains(catalog, p) {
					t.Errorf("%q in filtered but not in catalog", p.Name)
				}
			}
			for _, p := range catalog {
				if !contains(filtered, p) && MatchTokens(p, tokens) {
					t.Errorf("%q matches %q but was filtered out", p.Name, q)
				}
			}

			// Catalog order is preserved.
			last := -1
			for _, p := range filtered {
				idx := -1
				for i, c := range catalog {
					if c == p {
						idx = i
					}
				}
				if idx <= last {
					t.Errorf("Order not preserved for %q", p.Name)
				}
				last = idx
			}
		})
	}
}

func TestPageCount_IntegerDivision(t *testing.T) {
	for _, tt := range []struct{ n, size, want int }{
		{0, 5, 0}, {4, 5, 0}, {5, 5, 1}, {7, 5, 1}, {10, 5, 2}, {11, 5, 2}, {12, 3, 4},
	} {
		b := New(testCatalog(tt.n, 0), tt.size)
		if got := b.PageCount(); got != tt.want {
			t.Errorf("PageCount() with %d/%d = %d, want %d", tt.n, tt.size, got, tt.want)
		}
		if b.LastPage() > b.PageCount() {
			t.Errorf("LastPage() %d exceeds PageCount() %d", b.LastPage(), b.PageCount())
		}
	}
}

func TestNavigation_Clamps(t *testing.T) {
	b := New(testCatalog(12, 0), 5) // pages 0,1,2 (2 entries on the last)

	if b.Prev() {
		t.Error("Prev at page 0 should be a no-op")
	}
	if b.PageCurrent() != 0 {
		t.Errorf("Expected page 0, got %d", b.PageCurrent())
	}

	b.Next()
	b.Next()
	if b.PageCurrent() != 2 || b.PageCurrent() != b.PageCount() {
		t.Fatalf("Expected to reach page %d, got %d", b.PageCount(), b.PageCurrent())
	}
	if b.Next() {
		t.Error("Next at the last page should be a no-op")
	}
	if got := len(b.Page()); got != 2 {
		t.Errorf("Expected 2 entries on the last page, got %d", got)
	}

	b.First()
	if b.PageCurrent() != 0 {
		t.Errorf("First should go to 0, got %d", b.PageCurrent())
	}
	b.Last()
	if b.PageCurrent() != 2 {
		t.Errorf("Last should go to 2, got %d", b.PageCurrent())
	}
	b.Prev()
	if b.PageCurrent() != 1 {
		t.Errorf("Prev should go to 1, got %d", b.PageCurrent())
	}
}

// An exact multiple of the page size never lands on an empty trailing page.
func TestNavigation_ExactMultiple(t *testing.T) {
	b := New(testCatalog(10, 0), 5)

	b.Last()
	if b.PageCurrent() != 1 {
		t.Errorf("Expected last page 1, got %d", b.PageCurrent())
	}
	if len(b.Page()) != 5 {
		t.Errorf("Expected a full last page, got %d", len(b.Page()))
	}
	if b.Next() {
		t.Error("Next past the last non-empty page should be a no-op")
	}
	if b.Pages() != 2 {
		t.Errorf("Expected 2 display pages, got %d", b.Pages())
	}
}

func TestPageAt_OutOfRange(t *testing.T) {
	b := New(testCatalog(3, 0), 5)
	if got := b.PageAt(-1); len(got) != 0 {
		t.Errorf("Expected empty page for -1, got %d", len(got))
	}
	if got := b.PageAt(1); len(got) != 0 {
		t.Errorf("Expected empty page for 1, got %d", len(got))
	}
}

func TestClear(t *testing.T) {
	b := New(testCatalog(12, 7), 5)
	b.Search("warm")
	b.Next()

	b.Clear()
	if b.Query() != "" || b.Len() != 12 || b.PageCurrent() != 0 {
		t.Errorf("Clear left query=%q len=%d page=%d", b.Query(), b.Len(), b.PageCurrent())
	}
}

func TestSetCatalog_KeepsQueryAndClampsPage(t *testing.T) {
	b := New(testCatalog(20, 20), 5)
	b.Search("warm")
	b.Last()
	if b.PageCurrent() != 3 {
		t.Fatalf("Setup failed: expected page 3, got %d", b.PageCurrent())
	}

	// Shrink the catalog: only 7 warm palettes remain.
	b.SetCatalog(testCatalog(12, 7))
	if b.Query() != "warm" {
		t.Errorf("Expected query kept, got %q", b.Query())
	}
	if b.Len() != 7 {
		t.Errorf("Expected 7 matches after reload, got %d", b.Len())
	}
	if b.PageCurrent() != 1 {
		t.Errorf("Expected page clamped to 1, got %d", b.PageCurrent())
	}
}

func TestSetCatalog_WithoutQueryShowsEverything(t *testing.T) {
	b := New(testCatalog(3, 0), 5)
	b.SetCatalog(testCatalog(8, 0))
	if b.Len() != 8 {
		t.Errorf("Expected 8 palettes, got %d", b.Len())
	}
}

func TestWithMatcher(t *testing.T) {
	exact := func(p *model.Palette, tokens []string) bool {
		return len(tokens) == 1 && p.ID == tokens[0]
	}
	b := New(testCatalog(5, 0), 5, WithMatcher(exact))
	b.Search("p3")
	if b.Len() != 1 || b.Filtered()[0].ID != "p3" {
		t.Errorf("Custom matcher not used: %d results", b.Len())
	}
}

func TestSnapshot(t *testing.T) {
	b := New(testCatalog(12, 7), 5)
	b.Search("warm")
	b.Next()

	v := b.Snapshot()
	if v.Query != "warm" || v.Page != 1 || v.PageCount != 1 || v.Pages != 2 || v.Matches != 7 || v.Total != 12 {
		t.Errorf("Unexpected snapshot: %+v", v)
	}
	if len(v.Palettes) != 2 {
		t.Errorf("Expected 2 palettes in snapshot, got %d", len(v.Palettes))
	}
}

func TestFiltered_ReturnsCopy(t *testing.T) {
	b := New(testCatalog(3, 0), 5)
	f := b.Filtered()
	f[0] = nil
	if b.Filtered()[0] == nil {
		t.Error("Mutating Filtered() result changed browser state")
	}
}
