// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/store"
	"github.com/umputun/themer/app/theme"
)

// clientCookieName holds the client id used to key preferences in the database.
const clientCookieName = "themer-client"

// cookieMaxAge is the lifetime of preference and client cookies.
const cookieMaxAge = 365 * 24 * 60 * 60 // 1 year

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
}

// Handler handles web UI requests.
type Handler struct {
	store   store.Accessor // optional, cookie-only persistence if nil
	tmpl    *template.Template
	baseURL string
}

// New creates a new web handler. st is optional, pass nil to keep preference in the cookie only.
func New(st store.Accessor, cfg Config) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Handler{store: st, tmpl: tmpl, baseURL: cfg.BaseURL}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/theme", h.handleThemeState)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// templateData holds data passed to templates.
type templateData struct {
	Page    *pageView
	BaseURL string
}

// controller makes a theme controller bound to the request and the page view.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request, view *pageView) *theme.Controller {
	return theme.New(theme.Env{
		Prefs:  h.preferences(w, r),
		Scheme: clientHint(r.Header.Get(colorSchemeHint)),
		Root:   view,
		Icon:   view,
		Label:  view,
	})
}

// preferences returns the preference store for the request.
// With database configured the preference is keyed by client id cookie, otherwise it lives in the theme cookie.
func (h *Handler) preferences(w http.ResponseWriter, r *http.Request) theme.PreferenceStore {
	cookies := &cookiePrefs{w: w, r: r, path: h.cookiePath()}
	if h.store == nil {
		return cookies
	}
	return &dbPrefs{
		Scoped:  store.NewScoped(h.store, h.clientID(w, r), theme.StorageKey),
		cookies: cookies,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
