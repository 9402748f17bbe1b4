package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/themer/app/store"
	"github.com/umputun/themer/app/theme"
)

// colorSchemeHint is the user agent client hint carrying the system color scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// pageView collects theme facets applied to the page before it is rendered.
type pageView struct {
	Theme string // data-theme attribute of the root element
	Icon  string // class of #themeIcon
	Label string // text of #themeLabel
}

func (p *pageView) ThemeAttr() string         { return p.Theme }
func (p *pageView) SetThemeAttr(value string) { p.Theme = value }
func (p *pageView) SetClass(class string)     { p.Icon = class }
func (p *pageView) SetText(text string)       { p.Label = text }

// clientHint reports dark preference from the Sec-CH-Prefers-Color-Scheme header value.
type clientHint string

// PrefersDark is true for "dark", the hint value is a structured header string and may be quoted.
func (c clientHint) PrefersDark() bool {
	return strings.Trim(strings.TrimSpace(string(c)), `"`) == "dark"
}

// cookiePrefs keeps the preference in a long-living cookie.
type cookiePrefs struct {
	w    http.ResponseWriter
	r    *http.Request
	path string
}

func (c *cookiePrefs) LoadPreference(context.Context) (string, error) {
	cookie, err := c.r.Cookie(theme.StorageKey)
	if err != nil || cookie.Value == "" {
		return "", store.ErrNotFound
	}
	return cookie.Value, nil
}

func (c *cookiePrefs) SavePreference(_ context.Context, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     theme.StorageKey,
		Value:    value,
		Path:     c.path,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// dbPrefs keeps the preference in the database and mirrors it to the cookie.
// Cookie is used as fallback if the database has nothing for the client.
type dbPrefs struct {
	*store.Scoped
	cookies *cookiePrefs
}

func (d *dbPrefs) LoadPreference(ctx context.Context) (string, error) {
	v, err := d.Scoped.LoadPreference(ctx)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[WARN] can't load preference from db, %v", err)
	}
	return d.cookies.LoadPreference(ctx)
}

func (d *dbPrefs) SavePreference(ctx context.Context, value string) error {
	_ = d.cookies.SavePreference(ctx, value)
	return d.Scoped.SavePreference(ctx, value)
}

// clientID returns the client id from cookie, issuing a new one if missing.
func (h *Handler) clientID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(clientCookieName); err == nil {
		if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			return cookie.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookieName,
		Value:    id,
		Path:     h.cookiePath(),
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Printf("[DEBUG] issued client id %s", id)
	return id
}

// requestColorScheme asks the browser to send the color scheme hint, on the retry if it is critical.
func requestColorScheme(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Set("Critical-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)
}
