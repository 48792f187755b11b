// Package selector runs an interactive menu program (dmenu, rofi, fzf, ...)
// over a pair of pipes: entry names go in on its standard input, the user's
// choice comes back on its standard output.
package selector

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Source is anything that can list entry names in display order.
// *entry.Index implements it.
type Source interface {
	Traverse(visit func(name, command string))
}

// Selector asks the user to pick one name from src.
// It returns ErrCancelled when nothing was picked.
type Selector interface {
	Select(ctx context.Context, src Source) (string, error)
	Name() string
}

// Options configure New
type Options struct {
	// Overrides holds raw [selectors.<name>] tables from the config file
	Overrides map[string]map[string]any
	// ExtraArgs are appended verbatim after the preset arguments
	ExtraArgs []string
	Logger    logrus.FieldLogger
}

// New resolves name to a Selector. "builtin" selects the in-terminal fuzzy
// finder, "auto" the first installed preset; any other name is a preset,
// optionally overridden by config, or else a dmenu-compatible command.
func New(name string, opts Options) (Selector, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	switch name {
	case BuiltinName:
		preset, err := resolvePreset(name, opts.Overrides)
		if err != nil {
			return nil, err
		}
		return NewBuiltin(preset.Prompt), nil
	case "", AutoName:
		preset, ok := DetectAvailable()
		if !ok {
			return nil, ErrNoSelector
		}
		name = preset.Name
	}

	preset, err := resolvePreset(name, opts.Overrides)
	if err != nil {
		return nil, err
	}

	return NewBridge(preset, opts.ExtraArgs, log), nil
}

func resolvePreset(name string, overrides map[string]map[string]any) (Preset, error) {
	preset, ok := Lookup(name)
	if !ok {
		preset = Preset{Name: name, Command: name}
	}

	if raw, ok := overrides[name]; ok {
		var err error
		preset, err = DecodePreset(preset, raw)
		if err != nil {
			return Preset{}, fmt.Errorf("selector %q: %w", name, err)
		}
	}

	return preset, nil
}
