package plotspec

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// labelSeparator is the token separator used by raw column identifiers.
const labelSeparator = "_"

// FormatLabel turns a raw snake_case identifier into a display label:
// every underscore becomes a single space, then each whitespace-delimited
// word is title-cased.
//
//	FormatLabel("number_of_rooms_per_dwelling") == "Number Of Rooms Per Dwelling"
//	FormatLabel("") == ""
//
// Consecutive separators are preserved literally as consecutive spaces; the
// function replaces, it does not clean. Pure, total and idempotent:
// FormatLabel(FormatLabel(s)) == FormatLabel(s) for all s.
func FormatLabel(raw string) string {
	if raw == "" {
		return ""
	}

	// cases.Caser is stateful, so a fresh one per call keeps this goroutine-safe.
	return cases.Title(language.English).String(strings.ReplaceAll(raw, labelSeparator, " "))
}
