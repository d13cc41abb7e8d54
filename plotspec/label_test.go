package plotspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tverdal/edaplot/plotspec"
)

// TestFormatLabel_SnakeCase verifies the canonical transformation of a raw
// column identifier into a display label.
func TestFormatLabel_SnakeCase(t *testing.T) {
	assert.Equal(t, "Number Of Rooms Per Dwelling",
		plotspec.FormatLabel("number_of_rooms_per_dwelling"))
}

// TestFormatLabel_Empty verifies identity on empty input.
func TestFormatLabel_Empty(t *testing.T) {
	assert.Equal(t, "", plotspec.FormatLabel(""))
}

// TestFormatLabel_Idempotent verifies that formatting an already formatted
// string is a no-op: no underscores remain, so a second pass changes nothing.
func TestFormatLabel_Idempotent(t *testing.T) {
	for _, raw := range []string{
		"number_of_rooms_per_dwelling",
		"median_value",
		"already formatted",
		"single",
		"a__b",
	} {
		once := plotspec.FormatLabel(raw)
		assert.Equal(t, once, plotspec.FormatLabel(once), "FormatLabel must be idempotent for %q", raw)
	}
}

// TestFormatLabel_ConsecutiveSeparators verifies the literal replacement
// rule: consecutive underscores become consecutive spaces, never collapsed.
func TestFormatLabel_ConsecutiveSeparators(t *testing.T) {
	assert.Equal(t, "Tax  Rate", plotspec.FormatLabel("tax__rate"))
}

// TestFormatLabel_SingleWord covers inputs without any separator.
func TestFormatLabel_SingleWord(t *testing.T) {
	assert.Equal(t, "Rooms", plotspec.FormatLabel("rooms"))
	assert.Equal(t, "Rooms", plotspec.FormatLabel("ROOMS"), "title casing normalizes case")
}
