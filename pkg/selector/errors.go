package selector

import "errors"

var (
	// ErrCancelled is returned when the selector produced no choice
	ErrCancelled = errors.New("cancelled by user")

	// ErrSpawn is returned when the selector process could not be started
	ErrSpawn = errors.New("failed to start selector")

	// ErrNoSelector is returned when auto-detection finds nothing installed
	ErrNoSelector = errors.New("no selector available - please install dmenu, rofi, fuzzel, bemenu, wofi or fzf")
)

// IsCancelled reports whether err means the user made no selection
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
