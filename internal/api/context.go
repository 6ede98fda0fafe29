package api

import (
	"sync"

	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/service"
)

// Session is the single browsing session shared by every request.
//
// Design: single-user, single-session. `swatch serve` is a local tool, so all
// connected clients (browser tabs, scripts) drive the same query and page.
// The browser itself is not safe for concurrent use; every access goes through mu.
type Session struct {
	mu        sync.Mutex
	browser   *browse.Browser
	catalog   string
	browseSvc *service.BrowseService
}

// NewSession opens a browser over catalog (all catalogs when empty).
func NewSession(browseSvc *service.BrowseService, catalog string, pageSize int) (*Session, error) {
	b, err := browseSvc.Open(catalog, pageSize)
	if err != nil {
		return nil, err
	}
	return &Session{
		browser:   b,
		catalog:   catalog,
		browseSvc: browseSvc,
	}, nil
}

// View returns a snapshot of the current page.
func (s *Session) View() browse.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.browser.Snapshot()
}

// Search runs a query and returns whether it was applied along with the new view.
func (s *Session) Search(query string) (bool, browse.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := s.browser.Search(query)
	return applied, s.browser.Snapshot()
}

// Clear drops the active query.
func (s *Session) Clear() browse.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.browser.Clear()
	return s.browser.Snapshot()
}

// Move applies a page action and reports whether the page changed.
func (s *Session) Move(action PageAction, page int) (bool, browse.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed bool
	switch action {
	case PageFirst:
		changed = s.browser.First()
	case PagePrev:
		changed = s.browser.Prev()
	case PageNext:
		changed = s.browser.Next()
	case PageLast:
		changed = s.browser.Last()
	case PageGoTo:
		changed = s.browser.GoTo(page)
	}
	return changed, s.browser.Snapshot()
}

// Reload re-reads the catalogs from disk, keeping the active query.
func (s *Session) Reload() (browse.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.browseSvc.Reload(s.browser, s.catalog); err != nil {
		return browse.View{}, err
	}
	return s.browser.Snapshot(), nil
}

// Catalog returns the catalog the session is scoped to ("" for all).
func (s *Session) Catalog() string {
	return s.catalog
}
