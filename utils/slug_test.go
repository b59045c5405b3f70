package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Pizza":           "pizza",
		"Pizza & Pasta":   "pizza-pasta",
		"  Hot  Dogs  ":   "hot-dogs",
		"Crème Brûlée":    "cr-me-br-l-e",
		"100% Beef":       "100-beef",
		"---":             "",
		"":                "",
		"Already-Slugged": "already-slugged",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Mains", Capitalize("mains"))
	assert.Equal(t, "Mains", Capitalize("MAINS"))
	assert.Equal(t, "", Capitalize("   "))
}
