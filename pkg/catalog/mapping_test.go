package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMapping(t *testing.T) {
	t.Parallel()

	m := BuildMapping([]string{"Chèvre", "Base crème", "Jambon fumé", "Oeuf", "Mozarella", "Base tomate"})

	tests := []struct {
		key, want string
	}{
		{"chevre", "Chèvre"},
		{"chèvre", "Chèvre"},
		{"Chèvre", "Chèvre"},
		{"Chevre", "Chèvre"},
		{"CHEVRE", "Chèvre"},
		{"base creme", "Base crème"},
		{"base crème", "Base crème"},
		{"jambon fumé", "Jambon fumé"},
		{"uf", "Oeuf"},
		{"œuf", "Oeuf"},
		{"oeuf", "Oeuf"},
		{"mozarella", "Mozarella"},
		{"Mozarella", "Mozarella"},
		{"MOZARELLA", "Mozarella"},
		{"base tomate", "Base tomate"},
	}
	for _, tt := range tests {
		got, ok := m[tt.key]
		require.True(t, ok, "key %q", tt.key)
		assert.Equal(t, tt.want, got, "key %q", tt.key)
	}
}

func TestMapping_Resolve(t *testing.T) {
	t.Parallel()

	m := BuildMapping([]string{"Chèvre", "Jambon fumé", "Ananas"})

	got, ok := m.Resolve("Chevre")
	require.True(t, ok)
	assert.Equal(t, "Chèvre", got)

	got, ok = m.Resolve("  JAMBON FUME ")
	require.True(t, ok)
	assert.Equal(t, "Jambon fumé", got)

	_, ok = m.Resolve("Tomate")
	assert.False(t, ok)

	_, ok = m.Resolve("")
	assert.False(t, ok)
}

func TestMapping_ParsedOeufResolves(t *testing.T) {
	t.Parallel()

	m := BuildMapping([]string{"Oeuf"})
	for _, ing := range ParseIngredients("œuf, Œuf") {
		got, ok := m.Resolve(ing.Name)
		require.True(t, ok, "ingredient %q", ing.Name)
		assert.Equal(t, "Oeuf", got)
	}
}

func TestBuildMapping_SkipsEmptyKeys(t *testing.T) {
	t.Parallel()

	m := BuildMapping([]string{"", "ピザ", "Ail"})
	assert.Equal(t, []string{"AIL", "Ail", "ail"}, m.Keys())

	_, ok := m.Resolve("(50)")
	assert.False(t, ok)
}

func TestBuildMapping_LaterNameWins(t *testing.T) {
	t.Parallel()

	m := BuildMapping([]string{"Oignon", "OIGNON"})
	got, ok := m.Resolve("oignon")
	require.True(t, ok)
	assert.Equal(t, "OIGNON", got)
}
