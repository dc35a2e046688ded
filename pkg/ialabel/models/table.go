package models

// Table is an in-memory fixation report: a header row and data rows in
// file order. Cell values are int64, float64 or string depending on how
// they parsed from the sheet; nil marks a cell absent from a short row.
type Table struct {
	// Columns holds the header names in file order.
	Columns []string
	// Rows holds one slice per data row, aligned with Columns.
	Rows [][]interface{}
}

// ColumnIndex returns the position of the named column, or -1 if the
// table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a new empty column and returns its index. Every
// existing row grows by one nil cell.
func (t *Table) AddColumn(name string) int {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], nil)
	}
	return len(t.Columns) - 1
}
