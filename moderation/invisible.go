package moderation

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Control characters and zero-width format characters (ZWSP, ZWJ, BOM, bidi marks).
var invisible = runes.Remove(runes.Predicate(func(r rune) bool {
	return unicode.In(r, unicode.Cc, unicode.Cf)
}))

// StripInvisible removes characters a client would not render.
func StripInvisible(text string) string {
	out, _, err := transform.String(invisible, text)
	if err != nil {
		return text
	}
	return out
}
