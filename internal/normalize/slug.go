package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a human-readable name: diacritics
// stripped via NFD decomposition, lowercased, runs of non-alphanumerics
// collapsed to a single hyphen, leading and trailing hyphens trimmed.
// "Estúdio Beta" becomes "estudio-beta".
func Slugify(input string) string {
	stripped, _, err := transform.String(deaccent, input)
	if err != nil {
		stripped = input
	}
	stripped = strings.ToLower(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	lastHyphen := true
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
