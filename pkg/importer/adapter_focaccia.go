package importer

import (
	"strings"

	"github.com/hazyhaar/tifosi-import/pkg/catalog"
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"github.com/hazyhaar/tifosi-import/pkg/sqlgen"
)

func init() {
	Register(&focacciaAdapter{})
}

// nameMarkers open focaccia cells that hold notes instead of a name.
var nameMarkers = []string{"-", "*", "•", "Sauf", "Les"}

type focacciaAdapter struct{}

func (a *focacciaAdapter) ID() string          { return "focaccia" }
func (a *focacciaAdapter) Description() string { return "Focaccias, prix et composition" }
func (a *focacciaAdapter) DefaultFile() string { return "focaccia.xlsx" }
func (a *focacciaAdapter) Columns() []string   { return []string{"nom_focaccia", "prix", "ingrédients"} }
func (a *focacciaAdapter) Step() int           { return 40 }

type focaccia struct {
	name   string
	price  float64
	recipe string
}

// Emit writes every focaccia before any composition row, since the latter
// resolve the focaccia by name. The first row of a given name wins.
func (a *focacciaAdapter) Emit(run *Run, t *sheet.Table) error {
	var items []focaccia
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		nameCell, priceCell := row.Get("nom_focaccia"), row.Get("prix")
		if nameCell.Missing() || priceCell.Missing() {
			continue
		}
		name := nameCell.String()
		if isNote(name) {
			continue
		}
		price, ok := priceCell.Number()
		if !ok {
			run.Logger.Warn("focaccia ignoree: prix invalide", "focaccia", name, "prix", priceCell.String())
			continue
		}
		if seen[name] {
			run.Logger.Debug("focaccia en double ignoree", "focaccia", name)
			continue
		}
		seen[name] = true
		items = append(items, focaccia{name: name, price: price, recipe: row.Get("ingrédients").String()})
	}

	if err := run.Section("Insertion des focaccias"); err != nil {
		return err
	}
	for _, f := range items {
		if err := run.Exec(sqlgen.InsertFocaccia(f.name, f.price)); err != nil {
			return err
		}
	}

	if err := run.Section("Insertion des relations focaccia-ingredient"); err != nil {
		return err
	}
	for _, f := range items {
		ingredients := run.Parser.Parse(f.recipe)
		if len(ingredients) == 0 {
			continue
		}
		run.Logger.Info("ingredients parsed", "focaccia", f.name, "count", len(ingredients))
		for _, ing := range ingredients {
			run.Logger.Debug("ingredient", "focaccia", f.name, "name", ing.Name, "grams", ing.Quantity)
			canonical, ok := run.Mapping.Resolve(ing.Name)
			if !ok {
				run.Logger.Warn("ingredient non trouve", "focaccia", f.name,
					"ingredient", ing.Name, "normalized", catalog.Normalize(ing.Name))
				run.missing[ing.Name] = true
				continue
			}
			if err := run.Exec(sqlgen.InsertComprend(f.name, canonical, ing.Quantity)); err != nil {
				return err
			}
		}
	}
	return nil
}

func isNote(name string) bool {
	if name == "" {
		return true
	}
	for _, m := range nameMarkers {
		if strings.HasPrefix(name, m) {
			return true
		}
	}
	return false
}
