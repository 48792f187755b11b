package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
)

// Builtin is a fuzzy finder drawn on the controlling terminal. It needs no
// external program and is meant for use from a terminal window.
type Builtin struct {
	prompt string
}

// NewBuiltin creates a Builtin selector
func NewBuiltin(prompt string) *Builtin {
	return &Builtin{prompt: prompt}
}

// Name returns "builtin"
func (b *Builtin) Name() string {
	return BuiltinName
}

// Select shows the names of src in sorted order
func (b *Builtin) Select(ctx context.Context, src Source) (string, error) {
	var names []string
	src.Traverse(func(name, _ string) {
		names = append(names, name)
	})

	if len(names) == 0 {
		return "", ErrCancelled
	}

	prompt := b.prompt
	if prompt == "" {
		prompt = "> "
	}

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string { return names[i] },
		fuzzyfinder.WithPromptString(prompt),
		fuzzyfinder.WithContext(ctx),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrCancelled
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("fuzzy finder: %w", err)
	}

	return names[idx], nil
}
