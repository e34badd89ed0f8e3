package importer

import (
	"github.com/hazyhaar/tifosi-import/pkg/catalog"
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"github.com/hazyhaar/tifosi-import/pkg/sqlgen"
)

func init() {
	Register(&ingredientAdapter{})
}

type ingredientAdapter struct{}

func (a *ingredientAdapter) ID() string          { return "ingredient" }
func (a *ingredientAdapter) Description() string { return "Catalogue des ingredients" }
func (a *ingredientAdapter) DefaultFile() string { return "ingredient.xlsx" }
func (a *ingredientAdapter) Columns() []string   { return []string{"nom_ingredient"} }
func (a *ingredientAdapter) Step() int           { return 30 }

// Emit also builds the mapping used to resolve recipe names.
func (a *ingredientAdapter) Emit(run *Run, t *sheet.Table) error {
	names := IngredientNames(t)
	run.Mapping = catalog.BuildMapping(names)
	for _, key := range run.Mapping.Keys() {
		run.Logger.Debug("ingredient mapping", "key", key, "canonical", run.Mapping[key])
	}
	run.Logger.Info("ingredient mapping built", "ingredients", len(names), "keys", len(run.Mapping))

	if err := run.Section("Insertion des ingrédients"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := run.Exec(sqlgen.InsertIngredient(row.Get("nom_ingredient").String())); err != nil {
			return err
		}
	}
	return nil
}

// IngredientNames returns the present nom_ingredient values of t, in order.
func IngredientNames(t *sheet.Table) []string {
	names := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if c := row.Get("nom_ingredient"); !c.Missing() {
			names = append(names, c.String())
		}
	}
	return names
}
