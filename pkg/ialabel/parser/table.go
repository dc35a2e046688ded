// Package parser reads fixation reports from Excel worksheets.
package parser

import (
	"fmt"
	"strconv"

	"github.com/gazelab/ialabel/pkg/ialabel/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a worksheet into a Table. The first row is the
// header; data rows shorter than the header are padded with nil cells.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheetName)
	}

	t := &models.Table{Columns: rows[0]}
	for _, raw := range rows[1:] {
		row := make([]interface{}, len(t.Columns))
		for i := range row {
			if i < len(raw) {
				row[i] = parseValue(raw[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// parseValue attempts to parse a cell as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
