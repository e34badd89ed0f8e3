package importer

import (
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"github.com/hazyhaar/tifosi-import/pkg/sqlgen"
)

func init() {
	Register(&boissonAdapter{})
}

type boissonAdapter struct{}

func (a *boissonAdapter) ID() string          { return "boisson" }
func (a *boissonAdapter) Description() string { return "Boissons et leur marque" }
func (a *boissonAdapter) DefaultFile() string { return "boisson.xlsx" }
func (a *boissonAdapter) Columns() []string   { return []string{"nom_boisson", "marque"} }
func (a *boissonAdapter) Step() int           { return 20 }

// Emit resolves the brand by name, so marque must have been emitted first.
func (a *boissonAdapter) Emit(run *Run, t *sheet.Table) error {
	if err := run.Section("Insertion des boissons"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		stmt := sqlgen.InsertBoisson(row.Get("nom_boisson").String(), row.Get("marque").String())
		if err := run.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
