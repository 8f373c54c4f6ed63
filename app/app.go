package app

import (
	"io"
	"log/slog"

	"github.com/omegaatt36/renamer/internal/domain"
	"github.com/omegaatt36/renamer/internal/port"
)

// Option configures the App.
type Option func(*App)

// WithLogger sets a custom logger for the App.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithOutput sets where dry-run plans are printed and whether they are
// styled for a terminal.
func WithOutput(w io.Writer, styled bool) Option {
	return func(a *App) {
		a.out = w
		a.styled = styled
	}
}

// WithLister sets the lister used by dry runs to see entries a --match
// filter excluded from the plan.
func WithLister(lister port.Lister) Option {
	return func(a *App) {
		a.lister = lister
	}
}

// App runs one rename from a validated Config.
type App struct {
	renamer port.Renamer
	lister  port.Lister
	out     io.Writer
	styled  bool
	logger  *slog.Logger
}

// NewApp creates a new App with injected service dependencies.
func NewApp(renamer port.Renamer, opts ...Option) *App {
	a := &App{
		renamer: renamer,
		out:     io.Discard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run dispatches to list renaming when a list file is configured and to
// index renaming otherwise.
func (a *App) Run(cfg Config) error {
	ops, err := a.plan(cfg)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		var existing []string
		if a.lister != nil {
			if existing, err = a.lister.List(cfg.Dir, cfg.Options.Sort); err != nil {
				return err
			}
		}
		return renderPlan(a.out, ops, existing, a.styled)
	}

	renamed, err := a.renamer.Apply(cfg.Dir, ops)
	if err != nil {
		a.logger.Debug("rename stopped", "renamed_count", renamed, "planned_count", len(ops))
		return err
	}
	a.logger.Info("rename executed", "dir", cfg.Dir, "renamed_count", renamed)
	return nil
}

func (a *App) plan(cfg Config) ([]domain.RenameOp, error) {
	if cfg.ListPath != "" {
		return a.renamer.PlanWithList(cfg.Dir, cfg.Template, cfg.ListPath, cfg.Options)
	}
	return a.renamer.PlanWithIndex(cfg.Dir, cfg.Template, cfg.Options)
}
