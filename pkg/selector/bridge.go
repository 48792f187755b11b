package selector

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Bridge runs an external selector program for each Select call
type Bridge struct {
	preset    Preset
	extraArgs []string
	stderr    io.Writer
	log       logrus.FieldLogger
}

// NewBridge creates a Bridge for preset; extraArgs follow the preset's own
// arguments unchanged.
func NewBridge(preset Preset, extraArgs []string, log logrus.FieldLogger) *Bridge {
	return &Bridge{
		preset:    preset,
		extraArgs: extraArgs,
		stderr:    os.Stderr,
		log:       log.WithField("selector", preset.Name),
	}
}

// Name returns the preset name
func (b *Bridge) Name() string {
	return b.preset.Name
}

// Argv returns the argument vector the selector is started with. argv[0]
// is always the base name of the command.
func (b *Bridge) Argv() []string {
	argv := []string{filepath.Base(b.preset.Command)}
	argv = append(argv, b.preset.Args...)
	if b.preset.Prompt != "" && b.preset.PromptFlag != "" {
		argv = append(argv, b.preset.PromptFlag, b.preset.Prompt)
	}
	return append(argv, b.extraArgs...)
}

// Select streams the names of src to the selector and returns its choice.
// An empty answer, or the selector exiting without one, is ErrCancelled.
func (b *Bridge) Select(ctx context.Context, src Source) (string, error) {
	argv := b.Argv()
	b.log.WithField("argv", argv).Debug("starting selector")

	session, err := Start(ctx, b.preset.Command, argv, b.stderr)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := session.Close(); err != nil {
			b.log.WithError(err).Debug("selector exited with error")
		}
	}()

	if err := session.WriteNames(src); err != nil {
		// the selector went away early; whatever it printed is still read below
		b.log.WithError(err).Warn("selector stopped reading input")
	}

	choice, err := session.ReadChoice(ctx)
	if err != nil {
		return "", err
	}

	if choice == "" {
		return "", ErrCancelled
	}

	b.log.WithField("choice", choice).Debug("selector returned")
	return choice, nil
}
