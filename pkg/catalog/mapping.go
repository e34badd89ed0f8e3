package catalog

import (
	"sort"
	"strings"
)

// spellingVariants lists extra keys for ingredients whose recipe spellings
// drift from the catalogue, keyed by normalized canonical name.
var spellingVariants = map[string][]string{
	"base tomate": {"base tomate"},
	"base creme":  {"base creme", "base crème"},
	"jambon fume": {"jambon fume", "jambon fumé"},
	"oeuf":        {"oeuf", "œuf", "uf"},
	"chevre":      {"chevre", "chèvre", "Chèvre"},
}

// Mapping resolves recipe spellings to canonical catalogue names.
type Mapping map[string]string

// BuildMapping indexes the canonical names of the ingredient catalogue.
// Each name is reachable through its normalized key, a capitalized and an
// uppercase variant, plus the spelling variants above. Later names win on
// key collisions. Names that normalize to "" are not indexed.
func BuildMapping(names []string) Mapping {
	m := make(Mapping, len(names)*3)
	for _, name := range names {
		key := Normalize(name)
		if key == "" {
			continue
		}
		m[key] = name
		for _, v := range spellingVariants[key] {
			m[v] = name
		}
		m[strings.ToUpper(key[:1])+key[1:]] = name
		m[strings.ToUpper(key)] = name
	}
	return m
}

// Resolve returns the canonical name for a recipe spelling.
func (m Mapping) Resolve(name string) (string, bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	canonical, ok := m[key]
	return canonical, ok
}

// Keys returns all lookup keys, sorted.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
