package sheet

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// XLSXLoader reads one sheet of an Excel workbook. The first row is the
// header. Cells are read raw so numbers keep their stored precision.
type XLSXLoader struct {
	Sheet string
}

func (l *XLSXLoader) Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := l.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheet", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	name := filepath.Base(path)
	if len(rows) == 0 {
		return &Table{Name: name}, nil
	}
	return buildTable(name, rows[0], rows[1:]), nil
}
