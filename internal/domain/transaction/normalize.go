package transaction

import (
	"strings"
	"unicode"
)

// NormalizeMerchant turns raw merchant text into the canonical matching key:
// uppercase, everything outside [A-Z0-9] and whitespace removed, runs of
// whitespace collapsed to a single space, trimmed. Total function: never
// fails, empty in means empty out. The same key is used for the stored
// normalized merchant, for rule matching and for learned rule patterns.
func NormalizeMerchant(merchant string) string {
	upper := strings.ToUpper(merchant)

	var b strings.Builder
	b.Grow(len(upper))

	lastWasSpace := false
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastWasSpace = true
		}
		// Everything else (punctuation, symbols, non-ASCII) is dropped.
	}

	return strings.TrimRight(b.String(), " ")
}
