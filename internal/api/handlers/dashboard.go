package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bNTGeez/value-g/internal/api/response"
	"github.com/bNTGeez/value-g/internal/api/web"
	"github.com/bNTGeez/value-g/internal/dashboard"
	"github.com/rs/zerolog/log"
)

// loadingRefreshSeconds re-polls the page while a fetch cycle is running
const loadingRefreshSeconds = 1

// DashboardHandler serves the landing page and the dashboard table.
// Every request renders from the shared Table with the ViewSpec taken from the query string.
type DashboardHandler struct {
	table    *dashboard.Table
	renderer *web.Renderer

	// fetch cycles outlive the request that triggered them
	appCtx context.Context
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(appCtx context.Context, table *dashboard.Table, renderer *web.Renderer) *DashboardHandler {
	return &DashboardHandler{
		table:    table,
		renderer: renderer,
		appCtx:   appCtx,
	}
}

// Page holds fields shared by every page
type Page struct {
	Title   string
	Refresh int
}

// HeaderLink is a sortable column header
type HeaderLink struct {
	Label     string
	Indicator string
	Href      string
}

type dashboardPage struct {
	Page
	Status        dashboard.FetchStatus
	Message       string
	SearchTerm    string
	SortField     dashboard.SortField
	SortDirection dashboard.SortDirection
	Headers       []HeaderLink
	Rows          []dashboard.DisplayRow
	RetryAction   string
}

// Home renders the landing page
// GET /
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", Page{Title: "Value G"})
}

// Dashboard renders the quote table.
// A bare GET /dashboard is a navigation and mounts a new fetch cycle.
// GET /dashboard?q=&sort=&dir=
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	// 메뉴/링크로 진입하면 새 fetch cycle 을 시작하고 view 파라미터가 붙은 URL 로 이동한다.
	// 정렬/검색 링크와 자동 새로고침은 항상 파라미터를 달고 오므로 다시 fetch 하지 않는다.
	if r.URL.RawQuery == "" {
		h.table.Mount(h.appCtx)
		http.Redirect(w, r, "/dashboard?"+viewQuery(dashboard.DefaultViewSpec()).Encode(), http.StatusSeeOther)
		return
	}

	view, err := viewFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := h.table.Snapshot()
	data := dashboardPage{
		Page:          Page{Title: "Stock Dashboard"},
		Status:        snap.State.Status,
		Message:       snap.State.Message,
		SearchTerm:    view.SearchTerm,
		SortField:     view.SortField,
		SortDirection: view.SortDirection,
		Headers:       headerLinks(view),
		RetryAction:   "/dashboard/retry?" + viewQuery(view).Encode(),
	}

	if !snap.State.IsTerminal() {
		data.Refresh = loadingRefreshSeconds
	}
	if snap.State.Status == dashboard.StatusSuccess {
		data.Rows = dashboard.FormatRows(dashboard.Derive(snap.State.Rows, view))
	}

	h.render(w, r, "dashboard", data)
}

// Retry starts a new fetch cycle and redirects back to the table
// POST /dashboard/retry
func (h *DashboardHandler) Retry(w http.ResponseWriter, r *http.Request) {
	h.table.Retry(h.appCtx)

	q := r.URL.RawQuery
	if q == "" {
		q = viewQuery(dashboard.DefaultViewSpec()).Encode()
	}
	http.Redirect(w, r, "/dashboard?"+q, http.StatusSeeOther)
}

// Snapshot returns the table state as JSON, derived with the query's ViewSpec
// GET /api/dashboard?q=&sort=&dir=
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r.URL.Query())
	if err != nil {
		response.BadRequest(w, r, "Invalid view parameters", err.Error())
		return
	}

	snap := h.table.Snapshot()
	snap.View = view
	if snap.State.Status == dashboard.StatusSuccess {
		snap.Rows = dashboard.Derive(snap.State.Rows, view)
	}
	snap.State.Rows = nil

	response.Success(w, r, map[string]interface{}{
		"snapshot": snap,
		"display":  dashboard.FormatRows(snap.Rows),
		"stats":    h.table.Stats(),
	})
}

// RetryJSON is the API form of Retry
// POST /api/dashboard/retry
func (h *DashboardHandler) RetryJSON(w http.ResponseWriter, r *http.Request) {
	h.table.Retry(h.appCtx)
	response.JSON(w, http.StatusAccepted, map[string]interface{}{
		"status": h.table.State().Status,
	})
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, data); err != nil {
		log.Error().Err(err).Str("page", name).Msg("Failed to render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func viewFromQuery(q url.Values) (dashboard.ViewSpec, error) {
	return dashboard.ParseViewSpec(q.Get("q"), q.Get("sort"), q.Get("dir"))
}

func viewQuery(v dashboard.ViewSpec) url.Values {
	q := url.Values{}
	if v.SearchTerm != "" {
		q.Set("q", v.SearchTerm)
	}
	q.Set("sort", string(v.SortField))
	q.Set("dir", string(v.SortDirection))
	return q
}

// headerLinks builds one link per column carrying the view a click would produce
func headerLinks(v dashboard.ViewSpec) []HeaderLink {
	links := make([]HeaderLink, 0, len(dashboard.SortFields))
	for _, field := range dashboard.SortFields {
		links = append(links, HeaderLink{
			Label:     field.Label(),
			Indicator: v.Indicator(field),
			Href:      "/dashboard?" + viewQuery(v.Toggle(field)).Encode(),
		})
	}
	return links
}
