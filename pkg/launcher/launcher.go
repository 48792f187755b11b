// Package launcher starts the program chosen in the selector.
// Programs run through a shell in their own session and are never waited on.
package launcher

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

// DefaultShell interprets launch commands
const DefaultShell = "/bin/sh"

// Entries resolves a display name to its command. *entry.Index implements it.
type Entries interface {
	Find(name string) (string, bool)
}

// StartFunc starts name with args detached and returns its pid
type StartFunc func(name string, args ...string) (int, error)

// Launcher runs commands from an Entries lookup
type Launcher struct {
	entries Entries
	shell   string
	dryRun  bool
	out     io.Writer
	start   StartFunc
	log     logrus.FieldLogger
}

// Option configures a Launcher
type Option func(*Launcher)

// WithShell sets the command interpreter
func WithShell(shell string) Option {
	return func(l *Launcher) {
		if shell != "" {
			l.shell = shell
		}
	}
}

// WithDryRun prints the command to out instead of running it
func WithDryRun(out io.Writer) Option {
	return func(l *Launcher) {
		l.dryRun = true
		l.out = out
	}
}

// WithStartFunc replaces the process starter
func WithStartFunc(start StartFunc) Option {
	return func(l *Launcher) {
		l.start = start
	}
}

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Launcher) {
		l.log = log
	}
}

// New creates a Launcher over entries
func New(entries Entries, opts ...Option) *Launcher {
	l := &Launcher{
		entries: entries,
		shell:   DefaultShell,
		out:     os.Stdout,
		start:   utils.StartDetachedProcess,
		log:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Resolve returns the command indexed under name
func (l *Launcher) Resolve(name string) (string, error) {
	command, ok := l.entries.Find(name)
	if !ok {
		return "", &UnknownSelectionError{Name: name}
	}
	return command, nil
}

// Launch starts the command indexed under name and returns as soon as the
// child exists. The outcome of the program itself is never observed.
func (l *Launcher) Launch(name string) error {
	l.log.WithField("name", name).Debug("selected program")

	command, err := l.Resolve(name)
	if err != nil {
		return err
	}

	if l.dryRun {
		_, err := fmt.Fprintln(l.out, command)
		return err
	}

	pid, err := l.start(l.shell, "-c", command)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrStart, command, err)
	}

	l.log.WithFields(logrus.Fields{
		"command": command,
		"pid":     pid,
	}).Debug("running")

	return nil
}
