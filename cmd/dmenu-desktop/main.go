package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lvim-tech/dmenu-desktop/pkg/app"
	"github.com/lvim-tech/dmenu-desktop/pkg/config"
	"github.com/lvim-tech/dmenu-desktop/pkg/logging"
	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

var version = "0.1.0"

type globalOptions struct {
	configPath  string
	selector    string
	directories []string
	shell       string
	dryRun      bool
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "dmenu-desktop [flags] [-- selector-args...]",
		Short: "Launch desktop applications through dmenu",
		Long: `dmenu-desktop reads the .desktop files of the usual application
directories, shows their names in dmenu (or rofi, fuzzel, bemenu, wofi, fzf)
and runs the chosen application detached from the terminal.

Arguments after -- are passed to the selector unchanged.`,
		Example: `  dmenu-desktop
  dmenu-desktop -s rofi
  dmenu-desktop -- -l 15 -fn monospace-12
  dmenu-desktop list --format yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	addGlobalFlags(cmd.PersistentFlags(), opts)
	addRunFlags(cmd.Flags(), opts)

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ~/.config/dmenu-desktop/config.toml)")
	fs.StringArrayVarP(&opts.directories, "dir", "d", nil, "Directory to scan for .desktop files (repeatable, replaces the configured list)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
}

func addRunFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVarP(&opts.selector, "selector", "s", "", "Selector to use: dmenu, rofi, fuzzel, bemenu, wofi, fzf, builtin, auto or a command")
	fs.StringVar(&opts.shell, "shell", "", "Shell that runs the chosen command")
	fs.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the chosen command instead of running it")
}

// setup loads the config and builds the app for one invocation
func setup(out io.Writer, opts *globalOptions, selectorArgs []string) (*config.Config, *app.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	var logOpts []logging.Option
	if opts.verbose {
		logOpts = append(logOpts, logging.WithLevel(logrus.DebugLevel))
	}
	logger := logging.New(cfg.Log, logOpts...)

	a := app.New(cfg, app.Options{
		Selector:     opts.selector,
		SelectorArgs: selectorArgs,
		Directories:  opts.directories,
		Shell:        opts.shell,
		DryRun:       opts.dryRun,
		Stdout:       out,
		Logger:       logger,
	})

	return cfg, a, nil
}

func runLauncher(ctx context.Context, out io.Writer, opts *globalOptions, selectorArgs []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, a, err := setup(out, opts, selectorArgs)
	if err != nil {
		return err
	}

	if err := a.Run(ctx); err != nil {
		utils.ShowErrorNotificationWithConfig(&cfg.Notifications, "dmenu-desktop", err.Error())
		return err
	}

	return nil
}
