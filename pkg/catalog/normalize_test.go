package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "missing value", input: "", want: ""},
		{name: "strips accents", input: "Chèvre", want: "chevre"},
		{name: "uppercase", input: "CHEVRE", want: "chevre"},
		{name: "already normalized", input: "chevre", want: "chevre"},
		{name: "trims whitespace", input: "  Jambon fumé \t", want: "jambon fume"},
		{name: "ligature without decomposition is dropped", input: "Œuf", want: "uf"},
		{name: "compatibility decomposition", input: "ﬁgue", want: "figue"},
		{name: "cedilla", input: "FRANÇOIS", want: "francois"},
		{name: "non latin script degrades to empty", input: "ピザ", want: ""},
		{name: "mixed script keeps latin part", input: "Pizza ピザ", want: "pizza"},
		{name: "invalid utf8 bytes are dropped", input: "ba\xffcon", want: "bacon"},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "ascii separators trimmed", input: "\x1cAil\x1f", want: "ail"},
		{name: "no-break space trimmed", input: "\u00a0Ail\u00a0", want: "ail"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "Chèvre", " Base CRÈME ", "œuf", "Pomme de terre", "ピザ", "áb", " x "} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestNormalize_CaseAndAccentInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chevre", Normalize("Chèvre"))
	assert.Equal(t, Normalize("Chèvre"), Normalize("CHEVRE"))
	assert.Equal(t, Normalize("CHEVRE"), Normalize("chevre"))
}
