package selector

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

const (
	// AutoName picks the first installed preset
	AutoName = "auto"
	// BuiltinName is the in-terminal fuzzy finder
	BuiltinName = "builtin"
)

// Preset describes how to start a dmenu-compatible program
type Preset struct {
	Name       string   `mapstructure:"-"`
	Command    string   `mapstructure:"command"`
	Args       []string `mapstructure:"args"`
	Prompt     string   `mapstructure:"prompt"`
	PromptFlag string   `mapstructure:"prompt_flag"`
}

var registry = map[string]Preset{
	"dmenu":  {Name: "dmenu", Command: "dmenu", PromptFlag: "-p"},
	"rofi":   {Name: "rofi", Command: "rofi", Args: []string{"-dmenu"}, PromptFlag: "-p"},
	"fuzzel": {Name: "fuzzel", Command: "fuzzel", Args: []string{"--dmenu"}, PromptFlag: "--prompt"},
	"bemenu": {Name: "bemenu", Command: "bemenu", PromptFlag: "-p"},
	"wofi":   {Name: "wofi", Command: "wofi", Args: []string{"--dmenu"}, PromptFlag: "--prompt"},
	"fzf":    {Name: "fzf", Command: "fzf", PromptFlag: "--prompt"},
}

// detection priority for "auto"
var priority = []string{"dmenu", "rofi", "fuzzel", "bemenu", "wofi", "fzf"}

// Lookup returns the preset called name
func Lookup(name string) (Preset, bool) {
	p, ok := registry[name]
	if !ok {
		return Preset{}, false
	}
	p.Args = append([]string(nil), p.Args...)
	return p, true
}

// Names returns all preset names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectAvailable returns the first preset whose command is installed
func DetectAvailable() (Preset, bool) {
	for _, name := range priority {
		if p, ok := Lookup(name); ok && utils.CommandExists(p.Command) {
			return p, true
		}
	}
	return Preset{}, false
}

// DecodePreset applies a raw config table on top of base. Keys that are
// absent keep the base value.
func DecodePreset(base Preset, raw map[string]any) (Preset, error) {
	var user Preset
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &user,
	})
	if err != nil {
		return Preset{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Preset{}, fmt.Errorf("invalid preset: %w", err)
	}

	merged := base
	if _, ok := raw["command"]; ok {
		merged.Command = user.Command
	}
	if _, ok := raw["args"]; ok {
		merged.Args = user.Args
	}
	if _, ok := raw["prompt"]; ok {
		merged.Prompt = user.Prompt
	}
	if _, ok := raw["prompt_flag"]; ok {
		merged.PromptFlag = user.PromptFlag
	}

	if merged.Command == "" {
		return Preset{}, fmt.Errorf("invalid preset: empty command")
	}

	return merged, nil
}
