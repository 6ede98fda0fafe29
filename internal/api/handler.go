package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/logger"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/service"
)

// PageAction names a pagination move.
type PageAction string

const (
	PageFirst PageAction = "first"
	PagePrev  PageAction = "prev"
	PageNext  PageAction = "next"
	PageLast  PageAction = "last"
	PageGoTo  PageAction = "goto"
)

// ViewResponse is the JSON response for the current page. Page is zero-based.
type ViewResponse struct {
	Query     string            `json:"query"`
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Pages     int               `json:"pages"`
	PageSize  int               `json:"page_size"`
	Matches   int               `json:"matches"`
	Total     int               `json:"total"`
	Palettes  []PaletteResponse `json:"palettes"`
}

// PaletteResponse wraps a Palette for API output with display-only fields.
type PaletteResponse struct {
	*model.Palette
	Stars   string   `json:"stars"`
	Display []string `json:"display"`
}

func toPaletteResponse(p *model.Palette) PaletteResponse {
	display := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		display[i] = model.DisplayHex(c)
	}
	return PaletteResponse{
		Palette: p,
		Stars:   model.Stars(p.Favorites),
		Display: display,
	}
}

func toViewResponse(v browse.View) ViewResponse {
	palettes := make([]PaletteResponse, 0, len(v.Palettes))
	for _, p := range v.Palettes {
		palettes = append(palettes, toPaletteResponse(p))
	}
	return ViewResponse{
		Query:     v.Query,
		Page:      v.Page,
		PageCount: v.PageCount,
		Pages:     v.Pages,
		PageSize:  v.PageSize,
		Matches:   v.Matches,
		Total:     v.Total,
		Palettes:  palettes,
	}
}

// Handler contains all HTTP handlers for the API.
type Handler struct {
	session  *Session
	catalogs *service.CatalogService
	resolver *resolver.PaletteResolver
	copier   *service.CopyService
	onReload func(change FileChange, view ViewResponse) // Called after a watcher-triggered reload
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(
	session *Session,
	catalogs *service.CatalogService,
	paletteResolver *resolver.PaletteResolver,
	copier *service.CopyService,
) *Handler {
	MetricFilteredPalettes.Set(float64(session.View().Matches))
	return &Handler{
		session:  session,
		catalogs: catalogs,
		resolver: paletteResolver,
		copier:   copier,
	}
}

// SetOnReload sets a callback that's called after the catalogs are reloaded
// because of a file change. Used by Server to notify websocket clients.
func (h *Handler) SetOnReload(fn func(change FileChange, view ViewResponse)) {
	h.onReload = fn
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Catalog routes
	mux.HandleFunc("GET /api/v1/catalogs", h.ListCatalogs)
	mux.HandleFunc("POST /api/v1/reload", h.ReloadCatalogs)

	// Palette routes
	mux.HandleFunc("GET /api/v1/palettes/{ref}", h.GetPalette)
	mux.HandleFunc("POST /api/v1/palettes/{ref}/copy", h.CopyPalette)

	// Browser routes
	mux.HandleFunc("GET /api/v1/view", h.GetView)
	mux.HandleFunc("POST /api/v1/search", h.Search)
	mux.HandleFunc("DELETE /api/v1/search", h.ClearSearch)
	mux.HandleFunc("POST /api/v1/page", h.MovePage)
}

// --- Catalog Handlers ---

// ListCatalogs returns every catalog with its palette count.
func (h *Handler) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.catalogs.List()
	if err != nil {
		Error(w, err)
		return
	}
	if summaries == nil {
		summaries = []service.CatalogSummary{}
	}
	JSON(w, http.StatusOK, map[string]any{"catalogs": summaries})
}

// ReloadCatalogs re-reads the catalogs from disk, keeping the active query.
func (h *Handler) ReloadCatalogs(w http.ResponseWriter, r *http.Request) {
	view, err := h.reload()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, toViewResponse(view))
}

func (h *Handler) reload() (browse.View, error) {
	view, err := h.session.Reload()
	if err != nil {
		MetricReloadsTotal.WithLabelValues("error").Inc()
		return view, err
	}
	MetricReloadsTotal.WithLabelValues("ok").Inc()
	MetricFilteredPalettes.Set(float64(view.Matches))
	return view, nil
}

// OnFileChange implements FileWatcherSubscriber. The session is reloaded
// before clients are told, so a client refetching the view sees new data.
func (h *Handler) OnFileChange(change FileChange) {
	view, err := h.reload()
	if err != nil {
		logger.Warn("reload after file change failed", "path", change.Path, "error", err)
		return
	}
	logger.Info("catalogs reloaded", "catalog", change.Catalog, "type", change.Type)
	if h.onReload != nil {
		h.onReload(change, toViewResponse(view))
	}
}

// --- Palette Handlers ---

// GetPalette resolves a palette by ID, slug, name or prefix.
// The optional ?catalog= query parameter narrows the lookup.
func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	p, err := h.resolver.Resolve(r.URL.Query().Get("catalog"), r.PathValue("ref"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, toPaletteResponse(p))
}

// CopyRequest is the JSON body for copying a palette color.
// Index is one-based; zero copies every color.
type CopyRequest struct {
	Index int `json:"index"`
}

// CopyResponse reports what was put on the clipboard.
type CopyResponse struct {
	Palette string `json:"palette"`
	Index   int    `json:"index,omitempty"`
	Text    string `json:"text"`
}

// CopyPalette copies a color (or all colors) of a palette to the server's clipboard.
func (h *Handler) CopyPalette(w http.ResponseWriter, r *http.Request) {
	var req CopyRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			BadRequest(w, "invalid JSON body")
			return
		}
	}

	p, err := h.resolver.Resolve(r.URL.Query().Get("catalog"), r.PathValue("ref"))
	if err != nil {
		Error(w, err)
		return
	}

	var text string
	if req.Index == 0 {
		text, err = h.copier.CopyAll(p)
	} else {
		text, err = h.copier.CopyColor(p, req.Index-1)
	}
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, CopyResponse{Palette: p.Name, Index: req.Index, Text: text})
}

// --- Browser Handlers ---

// GetView returns the current page of the session.
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, toViewResponse(h.session.View()))
}

// SearchRequest is the JSON body for running a search.
type SearchRequest struct {
	Query string `json:"query"`
}

// Search runs a query. An empty query is ignored and the unchanged view returned.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	applied, view := h.session.Search(req.Query)
	if applied {
		MetricSearchesTotal.WithLabelValues("applied").Inc()
		MetricFilteredPalettes.Set(float64(view.Matches))
	} else {
		MetricSearchesTotal.WithLabelValues("ignored").Inc()
	}
	JSON(w, http.StatusOK, toViewResponse(view))
}

// ClearSearch drops the active query and shows the whole catalog again.
func (h *Handler) ClearSearch(w http.ResponseWriter, r *http.Request) {
	view := h.session.Clear()
	MetricFilteredPalettes.Set(float64(view.Matches))
	JSON(w, http.StatusOK, toViewResponse(view))
}

// PageRequest is the JSON body for a pagination move.
// Page is only read for the "goto" action and is zero-based.
type PageRequest struct {
	Action PageAction `json:"action"`
	Page   int        `json:"page,omitempty"`
}

// MovePage applies first/prev/next/last/goto. Moves past either end are clamped.
func (h *Handler) MovePage(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	switch req.Action {
	case PageFirst, PagePrev, PageNext, PageLast, PageGoTo:
	default:
		BadRequest(w, "action must be one of first, prev, next, last, goto (got "+strconv.Quote(string(req.Action))+")")
		return
	}

	_, view := h.session.Move(req.Action, req.Page)
	MetricPageMovesTotal.WithLabelValues(string(req.Action)).Inc()
	JSON(w, http.StatusOK, toViewResponse(view))
}
