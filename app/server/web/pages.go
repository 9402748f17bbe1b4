package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
)

// handleIndex renders the main page with the preferred theme already applied.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	requestColorScheme(w)

	view := &pageView{}
	applied := h.controller(w, r, view).Init(r.Context())
	log.Printf("[DEBUG] render index with %s theme", applied)

	data := templateData{Page: view, BaseURL: h.baseURL}
	if err := h.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle toggles the theme between light and dark.
// Form field "theme" carries the data-theme attribute of the page the toggle was clicked on.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	view := &pageView{Theme: r.FormValue("theme")}
	newTheme := h.controller(w, r, view).ToggleTheme(r.Context())
	log.Printf("[DEBUG] theme toggled to %s", newTheme)

	if r.Header.Get("HX-Request") == "true" {
		// trigger full page refresh
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}

// themeState is the JSON view of the effective theme.
type themeState struct {
	Theme string `json:"theme"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// handleThemeState returns the effective theme without changing anything.
func (h *Handler) handleThemeState(w http.ResponseWriter, r *http.Request) {
	requestColorScheme(w)
	t := h.controller(w, r, &pageView{}).PreferredTheme(r.Context())
	rest.RenderJSON(w, themeState{Theme: t.String(), Icon: t.IconClass(), Label: t.Label()})
}
