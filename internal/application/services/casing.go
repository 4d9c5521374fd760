package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.BritishEnglish)

// snakeCase folds a display name into the provider customer-id hint:
// trimmed, lowercased, runs of non-alphanumerics collapsed to single
// underscores. The result is a soft matching hint, not a unique id.
func snakeCase(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// titleCase renders a raw customer id ("joe_bloggs") as a displayable name
// ("Joe Bloggs").
func titleCase(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}
