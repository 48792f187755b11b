package app

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lvim-tech/dmenu-desktop/pkg/entry"
)

// List formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// WriteIndex prints idx in sorted order. Text prints one name per line,
// exactly what the selector receives; yaml prints a name to command mapping.
func WriteIndex(w io.Writer, idx *entry.Index, format string) error {
	switch format {
	case "", FormatText:
		for name := range idx.All() {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil

	case FormatYAML:
		doc := &yaml.Node{Kind: yaml.MappingNode}
		for name, command := range idx.All() {
			doc.Content = append(doc.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: command},
			)
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (available: %s, %s)", format, FormatText, FormatYAML)
	}
}
