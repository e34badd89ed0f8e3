// Package sheet loads spreadsheet files into rows of named cells.
package sheet

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Cell is one spreadsheet value. The zero Cell is a missing value.
type Cell struct {
	Value   string
	Present bool
}

// Text returns a cell for s; an empty s is a missing value.
func Text(s string) Cell {
	return Cell{Value: s, Present: s != ""}
}

// Missing reports whether the cell holds no value.
func (c Cell) Missing() bool { return !c.Present }

// String returns the cell text, "" when missing.
func (c Cell) String() string { return c.Value }

// Number parses the cell as a finite decimal number. A comma decimal
// separator is accepted; NaN and infinities are not numbers here.
func (c Cell) Number() (float64, bool) {
	if !c.Present {
		return 0, false
	}
	s := strings.TrimSpace(c.Value)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Row maps column names to cells.
type Row map[string]Cell

// Get returns the cell of column, missing if the column is absent.
func (r Row) Get(column string) Cell {
	return r[column]
}

// Table is a loaded sheet: its column names in file order and its rows.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table has a column named name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Require checks that every column is present.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return &MissingColumnError{Table: t.Name, Column: c, Available: t.Columns}
		}
	}
	return nil
}

// MissingColumnError reports a required column absent from a table.
type MissingColumnError struct {
	Table     string
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q (available: %s)", e.Table, e.Column, strings.Join(e.Available, ", "))
}

// Options tunes how files are read.
type Options struct {
	// Sheet names the workbook sheet to read; the first sheet when empty.
	Sheet string `yaml:"sheet"`
	// Delimiter is the CSV field separator; comma when empty.
	Delimiter string `yaml:"delimiter"`
	// Encoding is the CSV source encoding (e.g. "windows-1252"); UTF-8 when empty.
	Encoding string `yaml:"encoding"`
}

// Loader reads a file into a Table.
type Loader interface {
	Load(path string) (*Table, error)
}

// LoaderFor returns the loader matching the extension of path.
func LoaderFor(path string, opts Options) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return &XLSXLoader{Sheet: opts.Sheet}, nil
	case ".csv", ".txt":
		return &CSVLoader{Delimiter: opts.Delimiter, Encoding: opts.Encoding}, nil
	default:
		return nil, fmt.Errorf("unsupported spreadsheet format %q", filepath.Ext(path))
	}
}

// Open loads path with the loader matching its extension.
func Open(path string, opts Options) (*Table, error) {
	l, err := LoaderFor(path, opts)
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

// buildTable turns a header and raw records into a Table. Headers are
// trimmed, a leading BOM is dropped, and fully blank records are skipped.
// When two columns share a name the first one wins.
func buildTable(name string, header []string, records [][]string) *Table {
	t := &Table{Name: name, Columns: make([]string, len(header))}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		t.Columns[i] = strings.TrimSpace(h)
	}

	for _, rec := range records {
		row := make(Row, len(t.Columns))
		blank := true
		for i, col := range t.Columns {
			if col == "" {
				continue
			}
			if _, dup := row[col]; dup {
				continue
			}
			var v string
			if i < len(rec) {
				v = rec[i]
			}
			c := Text(v)
			if c.Present {
				blank = false
			}
			row[col] = c
		}
		if blank {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
