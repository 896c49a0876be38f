package state

import (
	"strings"
	"unicode"
)

// Label turns a raw camelCase identifier into a display label by inserting a
// space before each internal capital, lower-casing that capital and
// capitalising the first character: "highLoad" becomes "High load" and
// "confirmer" becomes "Confirmer".
//
// Every other character is kept as is, so digits, '-' and '_' pass through
// and each capital of an acronym starts its own word.
func Label(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 4)

	for i, r := range raw {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
