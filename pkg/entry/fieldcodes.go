package entry

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StripFieldCodes removes every %X field code from an Exec= value.
// Both the % and the character after it are dropped; a trailing lone % is
// dropped on its own. All other bytes are copied as they are, valid UTF-8
// or not. A space left doubled by a removal is collapsed and the result is
// trimmed.
func StripFieldCodes(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	dropped := false
	lastSpace := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if c == '%' {
			// skip the code character, if there is one
			_, size := utf8.DecodeRuneInString(raw[i+1:])
			i += size
			dropped = true
			continue
		}

		space := c < utf8.RuneSelf && unicode.IsSpace(rune(c))
		if space && dropped && lastSpace {
			continue
		}
		if !space {
			dropped = false
		}

		b.WriteByte(c)
		lastSpace = space
	}

	return strings.TrimSpace(b.String())
}

// Sanitize returns e with its Exec field stripped of field codes.
func Sanitize(e DesktopEntry) DesktopEntry {
	e.Exec = StripFieldCodes(e.Exec)
	return e
}
