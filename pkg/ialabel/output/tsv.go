// Package output writes augmented fixation tables as tab-delimited text.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gazelab/ialabel/pkg/ialabel/models"
)

// WriteTSV writes the table tab-delimited: the header row followed by
// every data row in order.
func WriteTSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			if i < len(row) {
				record[i] = FormatCell(row[i])
			} else {
				record[i] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTSVFile writes the table to the named file.
func WriteTSVFile(path string, t *models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTSV(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatCell renders a cell value the way it appeared in the input:
// integers without a decimal point, floats in their shortest form.
func FormatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Path derives the output filename from the input filename: the input
// extension is stripped and the suffix appended.
func Path(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + suffix
}
