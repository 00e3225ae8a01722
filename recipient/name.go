package recipient

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxNameLength = 12

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// NormalizeName lower-cases a character name and capitalizes its first rune.
// It fails on empty or overlong names.
func NormalizeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n == 0 || n > maxNameLength {
		return "", false
	}
	name = lower.String(name)
	_, size := utf8.DecodeRuneInString(name)
	return upper.String(name[:size]) + name[size:], true
}
