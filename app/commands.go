package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/server"
	"github.com/umputun/themer/app/store"
	"github.com/umputun/themer/app/theme"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB string `short:"d" long:"db" env:"THEMER_DB" description:"database URL (sqlite file or postgres://...), cookies only if empty"`

	Server struct {
		Address      string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout  time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout  time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		BaseURL      string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /themer)"`
	} `group:"server" namespace:"server" env-namespace:"THEMER_SERVER"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting themer server %s on %s", revision, s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	var prefs store.Accessor // stays nil interface for cookie-only mode
	if s.DB != "" {
		st, stErr := store.New(s.DB)
		if stErr != nil {
			return fmt.Errorf("failed to initialize store: %w", stErr)
		}
		defer st.Close()
		prefs = st
		log.Printf("[INFO] preferences stored in database")
	}

	srv, err := server.New(prefs, server.Config{
		Address:      s.Server.Address,
		ReadTimeout:  s.Server.ReadTimeout,
		WriteTimeout: s.Server.WriteTimeout,
		IdleTimeout:  s.Server.IdleTimeout,
		Version:      revision,
		BaseURL:      baseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// LocalOptions contains options shared between local preference commands
type LocalOptions struct {
	DB     string `short:"d" long:"db" env:"THEMER_DB" default:"themer.db" description:"database URL (sqlite file or postgres://...)"`
	Client string `long:"client" env:"THEMER_CLIENT" default:"local" description:"client the preference belongs to"`
	Scheme string `long:"scheme" env:"THEMER_SCHEME" choice:"auto" choice:"light" choice:"dark" default:"auto" description:"system color scheme, auto detects terminal background"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// withController opens the store, runs fn with a controller bound to the terminal and prints the result
func (o *LocalOptions) withController(fn func(ctx context.Context, c *theme.Controller) enum.Theme) error {
	setupLogs(o.Debug)

	st, err := store.New(o.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	view := newTerminalView()
	c := theme.New(theme.Env{
		Prefs:  store.NewScoped(st, o.Client, theme.StorageKey),
		Scheme: terminalScheme(o.Scheme),
		Root:   view,
		Icon:   view,
		Label:  view,
	})
	t := fn(context.Background(), c)
	if view.theme == "" { // nothing applied, render the resolved theme
		view.SetThemeAttr(t.String())
		view.SetClass(t.IconClass())
		view.SetText(t.Label())
	}
	fmt.Println(view.Render())
	return nil
}

// ShowCmd implements the show subcommand, prints the preferred theme without changing it
type ShowCmd struct {
	LocalOptions
}

// Execute runs the show command
func (c *ShowCmd) Execute(_ []string) error {
	return c.withController(func(ctx context.Context, ctrl *theme.Controller) enum.Theme {
		return ctrl.PreferredTheme(ctx)
	})
}

// SetCmd implements the set subcommand
type SetCmd struct {
	LocalOptions

	Args struct {
		Theme string `positional-arg-name:"theme" required:"true" description:"light or dark"`
	} `positional-args:"yes"`
}

// Execute runs the set command
func (c *SetCmd) Execute(_ []string) error {
	t, err := enum.ParseTheme(c.Args.Theme)
	if err != nil {
		return fmt.Errorf("can't set theme: %w", err)
	}
	return c.withController(func(ctx context.Context, ctrl *theme.Controller) enum.Theme {
		ctrl.SetTheme(ctx, t)
		return t
	})
}

// ToggleCmd implements the toggle subcommand
type ToggleCmd struct {
	LocalOptions
}

// Execute runs the toggle command
func (c *ToggleCmd) Execute(_ []string) error {
	return c.withController(func(ctx context.Context, ctrl *theme.Controller) enum.Theme {
		return ctrl.ToggleTheme(ctx)
	})
}
