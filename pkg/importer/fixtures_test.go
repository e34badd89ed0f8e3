package importer

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeWorkbook saves rows as the first sheet of dir/name.
func writeWorkbook(t *testing.T, dir, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		row := r
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs %s: %v", name, err)
	}
	return path
}

// writeSources writes a small but complete set of source workbooks.
func writeSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeWorkbook(t, dir, "marque.xlsx", [][]any{
		{"nom_marque"},
		{"Coca-cola"},
		{"Cristalline"},
		{"Monster"},
	})
	writeWorkbook(t, dir, "boisson.xlsx", [][]any{
		{"nom_boisson", "marque"},
		{"Coca-cola zéro", "Coca-cola"},
		{"Eau de source", "Cristalline"},
		{"Monster energy ultra gold", "Monster"},
	})
	writeWorkbook(t, dir, "ingredient.xlsx", [][]any{
		{"nom_ingredient"},
		{"Ail"}, {"Ananas"}, {"Base tomate"}, {"Base crème"}, {"Chèvre"},
		{"Jambon fumé"}, {"Mozarella"}, {"Oeuf"}, {"Raclette"}, {"Cresson"},
	})
	writeFocaccias(t, dir)
	return dir
}

func writeFocaccias(t *testing.T, dir string) {
	t.Helper()
	writeWorkbook(t, dir, "focaccia.xlsx", [][]any{
		{"nom_focaccia", "prix", "ingrédients"},
		{"Mozaccia", 9.8, "Base tomate, Mozarella (50), Ail, Tomate"},
		{"Hawaienne", 11.2, "- Sauf le lundi\nBase tomate, Ananas, Jambon fumé"},
		{"Raclaccia", 10.9, "Base crème, Raclette, Chèvre (60)"},
		{"Mozaccia", 12, "Ail"},
		{"- Sauf le dimanche", 1, "Ail"},
		{"Sans prix", nil, "Ail"},
		{"Paysanne", 12.8, "Quantités : doubles\nOeuf, Cresson (10), Lardons"},
		{"Les notes", 1, "Ail"},
		{"L'Italienne", 10, ""},
	})
}
