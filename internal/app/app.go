package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/rightclick/internal/data/dispatcher"
	"github.com/atomicstack/rightclick/internal/logging/events"
	"github.com/atomicstack/rightclick/internal/menu"
	"github.com/atomicstack/rightclick/internal/metric"
	"github.com/atomicstack/rightclick/internal/opener"
	"github.com/atomicstack/rightclick/internal/server"
	"github.com/atomicstack/rightclick/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RootMenu   string
	HTTPAddr   string
	Headless   bool
	NoBrowser  bool
}

// ErrNothingToRun is returned when the terminal menu is disabled and no HTTP
// address was given.
var ErrNothingToRun = errors.New("headless mode without an http address has nothing to run")

// Run plays one game until the terminal menu exits or ctx is canceled. The
// terminal menu and the HTTP server, when both are enabled, share the same
// game state.
func Run(ctx context.Context, cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()
	if cfg.Headless && cfg.HTTPAddr == "" {
		return ErrNothingToRun
	}

	recorder := metric.NewRecorder()
	engine := dispatcher.New(recorder)
	launcher := newLauncher(cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	if cfg.HTTPAddr != "" {
		srv := server.New(
			server.WithAddr(cfg.HTTPAddr),
			server.WithAPI(server.NewAPI(engine, launcher, recorder.Registry())),
			server.WithSimpleHealth(),
		)
		g.Go(func() error {
			if err := srv.Serve(gCtx); err != nil {
				return fmt.Errorf("http: %w", err)
			}
			return nil
		})
	}

	if !cfg.Headless {
		g.Go(func() error {
			// leaving the popup ends the run, server included
			defer cancel()
			return runTerminal(gCtx, engine, launcher, cfg)
		})
	}

	return g.Wait()
}

func runTerminal(ctx context.Context, engine *dispatcher.Dispatcher, launcher menu.Opener, cfg Config) error {
	model := ui.NewModel(engine, launcher, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.RootMenu)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func newLauncher(cfg Config) menu.Opener {
	if cfg.NoBrowser {
		return opener.Discard{}
	}
	return opener.NewThrottled(opener.Browser{}, opener.DefaultLaunchInterval)
}
