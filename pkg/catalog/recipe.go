package catalog

import (
	"strconv"
	"strings"
)

// Ingredient is one entry of a recipe line. A recipe may list the same
// ingredient twice; entries are never merged.
type Ingredient struct {
	Name     string
	Quantity int
}

// fallbackQuantity applies to ingredients absent from the default table.
const fallbackQuantity = 1

// defaultQuantities gives the grams used when a recipe line states none.
// Keys are normalized.
var defaultQuantities = map[string]int{
	"ail":            2,
	"ananas":         40,
	"artichaut":      20,
	"bacon":          80,
	"base tomate":    200,
	"base creme":     200,
	"champignon":     40,
	"chevre":         50,
	"cresson":        20,
	"emmental":       50,
	"gorgonzola":     50,
	"jambon cuit":    80,
	"jambon fume":    80,
	"mozarella":      50,
	"oignon":         20,
	"olive noire":    20,
	"olive verte":    20,
	"parmesan":       50,
	"piment":         2,
	"poivre":         1,
	"pomme de terre": 80,
	"raclette":       50,
	"salami":         80,
	"tomate cerise":  40,
	"oeuf":           50,
}

// nameCorrections maps exact recipe spellings to the spelling stored in
// the output.
var nameCorrections = map[string]string{
	"chèvre":     "Chevre",
	"œuf":        "Oeuf",
	"base crème": "Base crème",
}

// instructionMarkers open lines that annotate a recipe rather than list it.
var instructionMarkers = []string{"-", "*", "•", "Sauf", "Les quantités"}

// quantitySeparator marks "name : quantity" annotation lines.
const quantitySeparator = " : "

// Parser extracts ingredient entries from recipe cells. A Parser is
// immutable once built and safe for concurrent use.
type Parser struct {
	quantities  map[string]int
	corrections map[string]string
}

var standard = NewParser(nil, nil)

// NewParser returns a parser using the built-in tables, extended or
// overridden by quantities (keyed by any spelling, normalized here) and
// corrections (keyed by exact spelling).
func NewParser(quantities map[string]int, corrections map[string]string) *Parser {
	p := &Parser{
		quantities:  make(map[string]int, len(defaultQuantities)+len(quantities)),
		corrections: make(map[string]string, len(nameCorrections)+len(corrections)),
	}
	for k, v := range defaultQuantities {
		p.quantities[k] = v
	}
	for k, v := range quantities {
		p.quantities[Normalize(k)] = v
	}
	for k, v := range nameCorrections {
		p.corrections[k] = v
	}
	for k, v := range corrections {
		p.corrections[k] = v
	}
	return p
}

// ParseIngredients parses text with the built-in tables.
func ParseIngredients(text string) []Ingredient {
	return standard.Parse(text)
}

// DefaultQuantity returns the grams used for name when the recipe gives
// no explicit quantity.
func (p *Parser) DefaultQuantity(name string) int {
	if q, ok := p.quantities[Normalize(name)]; ok {
		return q
	}
	return fallbackQuantity
}

// Correct returns the stored spelling for an exact recipe spelling.
func (p *Parser) Correct(name string) string {
	if c, ok := p.corrections[name]; ok {
		return c
	}
	return name
}

// Parse returns the entries of the ingredient line of text, in order.
// Empty text, or text without an ingredient line, yields nil.
func (p *Parser) Parse(text string) []Ingredient {
	line, ok := IngredientLine(text)
	if !ok {
		return nil
	}

	var result []Ingredient
	for _, seg := range strings.Split(line, ",") {
		seg = trimSpace(seg)
		if seg == "" {
			continue
		}
		name, qty, explicit := splitQuantity(seg)
		name = p.Correct(name)
		if !explicit {
			qty = p.DefaultQuantity(name)
		}
		result = append(result, Ingredient{Name: name, Quantity: qty})
	}
	return result
}

// IngredientLine returns the first line of text that lists ingredients,
// trimmed. Blank lines, instruction lines and "name : quantity"
// annotations are skipped.
func IngredientLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := trimSpace(line)
		if trimmed == "" || IsInstruction(trimmed) {
			continue
		}
		if strings.Contains(line, quantitySeparator) {
			continue
		}
		return trimmed, true
	}
	return "", false
}

// IsInstruction reports whether a trimmed line opens with an instruction
// marker.
func IsInstruction(line string) bool {
	for _, m := range instructionMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// splitQuantity splits "Jambon cuit (100)" into its name and the explicit
// quantity. Only a parenthesized run of ASCII digits closing the segment
// counts; anything else leaves the whole segment as the name.
// Non-ASCII digits such as "(１２)" are deliberately not quantities.
func splitQuantity(seg string) (name string, qty int, explicit bool) {
	if !strings.HasSuffix(seg, ")") {
		return trimSpace(seg), 0, false
	}
	open := strings.LastIndexByte(seg, '(')
	if open < 0 {
		return trimSpace(seg), 0, false
	}
	digits := seg[open+1 : len(seg)-1]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return trimSpace(seg), 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Overflow.
		return trimSpace(seg), 0, false
	}
	return trimSpace(seg[:open]), n, true
}
