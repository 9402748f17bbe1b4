// Package theme resolves, applies and toggles the light/dark display theme.
// The controller owns no state of its own, everything lives in the environment
// it is given: persisted preference, system color-scheme signal, the document
// root attribute and two optional reflection elements (icon and label).
package theme

import (
	"context"
	"errors"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/store"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/scheme.go -pkg mocks -skip-ensure -fmt goimports . SchemeDetector

// StorageKey is the fixed key the preference is persisted under.
const StorageKey = "unisync-theme"

// AttrName is the document root attribute reflecting the active theme.
const AttrName = "data-theme"

// PreferenceStore reads and writes the persisted theme preference.
// LoadPreference returns store.ErrNotFound if nothing was persisted yet.
type PreferenceStore interface {
	LoadPreference(ctx context.Context) (string, error)
	SavePreference(ctx context.Context, value string) error
}

// SchemeDetector reports the system "prefers dark color scheme" signal.
type SchemeDetector interface {
	PrefersDark() bool
}

// Document gives access to the theme attribute of the document root.
// ThemeAttr returns empty string if the attribute is not set.
type Document interface {
	ThemeAttr() string
	SetThemeAttr(value string)
}

// IconElement is the icon indicator mirroring the active theme.
type IconElement interface {
	SetClass(class string)
}

// LabelElement is the text label mirroring the active theme.
type LabelElement interface {
	SetText(text string)
}

// Env bundles the capabilities the controller works with.
// Any member may be nil, missing capabilities are skipped or degrade to defaults.
type Env struct {
	Prefs  PreferenceStore
	Scheme SchemeDetector
	Root   Document
	Icon   IconElement
	Label  LabelElement
}

// Controller applies theme preference to its environment.
type Controller struct {
	env Env
}

// New makes a controller bound to the given environment.
func New(env Env) *Controller {
	return &Controller{env: env}
}

// PreferredTheme returns the persisted theme if it is exactly "light" or "dark",
// otherwise dark if the system signals dark preference, otherwise light.
func (c *Controller) PreferredTheme(ctx context.Context) enum.Theme {
	if c.env.Prefs != nil {
		saved, err := c.env.Prefs.LoadPreference(ctx)
		switch {
		case err == nil:
			if t, ok := exactTheme(saved); ok {
				return t
			}
			log.Printf("[DEBUG] ignore invalid stored theme %q", saved)
		case !errors.Is(err, store.ErrNotFound):
			log.Printf("[WARN] can't load theme preference, %v", err)
		}
	}
	if c.env.Scheme != nil && c.env.Scheme.PrefersDark() {
		return enum.ThemeDark
	}
	return enum.ThemeLight
}

// SetTheme applies t to the root attribute, persists it and updates icon and label.
// Targets missing from the environment are skipped.
func (c *Controller) SetTheme(ctx context.Context, t enum.Theme) {
	if c.env.Root != nil {
		c.env.Root.SetThemeAttr(t.String())
	}
	if c.env.Prefs != nil {
		if err := c.env.Prefs.SavePreference(ctx, t.String()); err != nil {
			log.Printf("[WARN] can't save theme preference %s, %v", t, err)
		}
	}
	if c.env.Icon != nil {
		c.env.Icon.SetClass(t.IconClass())
	}
	if c.env.Label != nil {
		c.env.Label.SetText(t.Label())
	}
}

// ToggleTheme switches to the opposite of the current theme and returns the new one.
// Current theme is taken from the root attribute, or PreferredTheme if it is not set.
func (c *Controller) ToggleTheme(ctx context.Context) enum.Theme {
	next := c.current(ctx).Toggle()
	c.SetTheme(ctx, next)
	return next
}

// Init applies the preferred theme, to be called before anything is rendered.
func (c *Controller) Init(ctx context.Context) enum.Theme {
	t := c.PreferredTheme(ctx)
	c.SetTheme(ctx, t)
	return t
}

func (c *Controller) current(ctx context.Context) enum.Theme {
	if c.env.Root != nil {
		if t, ok := exactTheme(c.env.Root.ThemeAttr()); ok {
			return t
		}
	}
	return c.PreferredTheme(ctx)
}

// exactTheme accepts only the canonical theme names, ParseTheme is case-insensitive.
func exactTheme(v string) (enum.Theme, bool) {
	t, err := enum.ParseTheme(v)
	if err != nil || t.String() != v {
		return enum.Theme{}, false
	}
	return t, true
}
