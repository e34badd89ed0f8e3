package importer

import (
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"github.com/hazyhaar/tifosi-import/pkg/sqlgen"
)

func init() {
	Register(&marqueAdapter{})
}

type marqueAdapter struct{}

func (a *marqueAdapter) ID() string          { return "marque" }
func (a *marqueAdapter) Description() string { return "Marques de boissons" }
func (a *marqueAdapter) DefaultFile() string { return "marque.xlsx" }
func (a *marqueAdapter) Columns() []string   { return []string{"nom_marque"} }
func (a *marqueAdapter) Step() int           { return 10 }

func (a *marqueAdapter) Emit(run *Run, t *sheet.Table) error {
	if err := run.Section("Insertion des marques"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := run.Exec(sqlgen.InsertMarque(row.Get("nom_marque").String())); err != nil {
			return err
		}
	}
	return nil
}
