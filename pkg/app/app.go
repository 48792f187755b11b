// Package app wires the dmenu-desktop pipeline together: index the desktop
// files, ask the selector, launch the choice.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lvim-tech/dmenu-desktop/pkg/config"
	"github.com/lvim-tech/dmenu-desktop/pkg/entry"
	"github.com/lvim-tech/dmenu-desktop/pkg/launcher"
	"github.com/lvim-tech/dmenu-desktop/pkg/logging"
	"github.com/lvim-tech/dmenu-desktop/pkg/selector"
	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

// Options are per-invocation overrides of the config
type Options struct {
	Selector     string
	SelectorArgs []string
	Directories  []string
	Shell        string
	DryRun       bool
	Stdout       io.Writer
	Logger       logrus.FieldLogger
}

// App runs the pipeline for one invocation
type App struct {
	cfg  *config.Config
	opts Options
	log  logrus.FieldLogger
}

// New creates an App
func New(cfg *config.Config, opts Options) *App {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(cfg.Log)
	}

	return &App{cfg: cfg, opts: opts, log: opts.Logger}
}

// Directories returns the directories to index, in priority order
func (a *App) Directories() []string {
	if len(a.opts.Directories) > 0 {
		dirs := make([]string, 0, len(a.opts.Directories))
		for _, dir := range a.opts.Directories {
			dirs = append(dirs, utils.ExpandPath(dir))
		}
		return dirs
	}
	return a.cfg.GetDirectories()
}

// BuildIndex parses every desktop file into a fresh index
func (a *App) BuildIndex() (*entry.Index, error) {
	exclude, err := utils.NewExcluder(a.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	return entry.BuildIndex(a.Directories(), exclude, logging.Component(a.log, "index")), nil
}

// Selector resolves the selector for this run
func (a *App) Selector() (selector.Selector, error) {
	name := a.opts.Selector
	if name == "" {
		name = a.cfg.GetSelector()
	}

	return selector.New(name, selector.Options{
		Overrides: a.cfg.Selectors,
		ExtraArgs: a.opts.SelectorArgs,
		Logger:    logging.Component(a.log, "selector"),
	})
}

// Launcher returns a launcher over idx
func (a *App) Launcher(idx *entry.Index) *launcher.Launcher {
	shell := a.opts.Shell
	if shell == "" {
		shell = a.cfg.Shell
	}

	opts := []launcher.Option{
		launcher.WithShell(shell),
		launcher.WithLogger(logging.Component(a.log, "launcher")),
	}
	if a.opts.DryRun {
		opts = append(opts, launcher.WithDryRun(a.opts.Stdout))
	}

	return launcher.New(idx, opts...)
}

// Run indexes, selects and launches. No selection and an unknown selection
// both return nil; only infrastructure failures are returned.
func (a *App) Run(ctx context.Context) error {
	sel, err := a.Selector()
	if err != nil {
		return err
	}

	idx, err := a.BuildIndex()
	if err != nil {
		return err
	}

	choice, err := sel.Select(ctx, idx)
	if err != nil {
		if selector.IsCancelled(err) || errors.Is(err, context.Canceled) {
			a.log.Debug("no selection made")
			return nil
		}
		return err
	}

	if err := a.Launcher(idx).Launch(choice); err != nil {
		if launcher.IsUnknownSelection(err) {
			a.log.WithField("name", choice).Warn(err.Error())
			utils.ShowErrorNotificationWithConfig(&a.cfg.Notifications, "dmenu-desktop", err.Error())
			return nil
		}
		return fmt.Errorf("launch %q: %w", choice, err)
	}

	return nil
}
