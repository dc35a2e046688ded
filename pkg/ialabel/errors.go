package ialabel

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates the input sheet lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ErrNoSheet indicates the workbook contains no readable sheet.
var ErrNoSheet = errors.New("no sheet found")

// ErrBadPositions indicates a WordPositions cell could not be decoded.
var ErrBadPositions = errors.New("unparsable word positions")

// RowError represents a per-row failure during labeling.
type RowError struct {
	Row    int // 1-based data row number
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(row int, column string, err error) *RowError {
	return &RowError{Row: row, Column: column, Err: err}
}
