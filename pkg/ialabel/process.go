package ialabel

import (
	"fmt"

	"github.com/gazelab/ialabel/pkg/ialabel/models"
	"github.com/gazelab/ialabel/pkg/ialabel/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Input column names of a fixation report.
const (
	ColBeginning  = "beginning"
	ColPretarget  = "pretarget"
	ColTargetWord = "target_word"
	ColEnding     = "ending"
	ColCurrentFix = "CURRENT_FIX_X"
	ColNextFix    = "NEXT_FIX_X"
)

// Output column names appended by the pipeline.
const (
	ColWordPositions = "WordPositions"
	ColCurrentIA     = "CURRENT_FIX_INTEREST_AREA_ID"
	ColNextIA        = "NEXT_FIX_INTEREST_AREA_ID"
)

// RequiredColumns lists the columns the input sheet must contain.
var RequiredColumns = []string{
	ColBeginning, ColPretarget, ColTargetWord, ColEnding,
	ColCurrentFix, ColNextFix,
}

// Report summarizes one labeling run.
type Report struct {
	// Table is the augmented table: all input columns plus
	// WordPositions and the two interest-area columns.
	Table *models.Table
	// Rows is the number of data rows processed.
	Rows int
	// Resolved counts fixation cells that resolved to a word label.
	Resolved int
	// OffSentence counts fixations left or right of the sentence.
	OffSentence int
	// NonFixations counts pass-through non-fixation markers.
	NonFixations int
	// Unresolved counts fixations that matched no word and no boundary
	// case.
	Unresolved int
	// FailedRows counts rows whose positions could not be built or
	// serialized; their interest-area cells carry LabelUnresolved.
	FailedRows int
}

// Process reads the fixation report at path, computes per-row word
// positions and interest-area labels, and returns the augmented table.
// Input columns and row order are preserved.
func Process(path string, opts Options) (*Report, error) {
	logger := opts.logger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrNoSheet
		}
		sheet = list[0]
	}

	t, err := parser.ReadTable(f, sheet)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded fixation report",
		zap.String("sheet", sheet),
		zap.Int("rows", len(t.Rows)),
		zap.Int("columns", len(t.Columns)))

	return label(t, opts)
}

// label runs the row-wise pipeline over an already-loaded table.
func label(t *models.Table, opts Options) (*Report, error) {
	logger := opts.logger()

	cols := make(map[string]int, len(RequiredColumns))
	for _, name := range RequiredColumns {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[name] = idx
	}

	wpIdx := t.AddColumn(ColWordPositions)
	curIdx := t.AddColumn(ColCurrentIA)
	nextIdx := t.AddColumn(ColNextIA)

	rep := &Report{Table: t, Rows: len(t.Rows)}
	for i, row := range t.Rows {
		rowNum := i + 1

		pm := BuildWordPositions(
			regionText(row[cols[ColBeginning]]),
			regionText(row[cols[ColPretarget]]),
			regionText(row[cols[ColTargetWord]]),
			regionText(row[cols[ColEnding]]),
			opts.Geometry,
		)
		enc, err := EncodePositions(pm)
		if err != nil {
			logger.Error("word positions failed",
				zap.Error(NewRowError(rowNum, ColWordPositions, err)))
			row[wpIdx] = ""
			row[curIdx] = LabelUnresolved
			row[nextIdx] = LabelUnresolved
			rep.FailedRows++
			continue
		}
		row[wpIdx] = enc

		row[curIdx] = rep.resolve(pm, row[cols[ColCurrentFix]], rowNum, ColCurrentFix, logger)
		row[nextIdx] = rep.resolve(pm, row[cols[ColNextFix]], rowNum, ColNextFix, logger)
	}

	logger.Info("labeling complete",
		zap.Int("rows", rep.Rows),
		zap.Int("resolved", rep.Resolved),
		zap.Int("off_sentence", rep.OffSentence),
		zap.Int("non_fixations", rep.NonFixations),
		zap.Int("unresolved", rep.Unresolved),
		zap.Int("failed_rows", rep.FailedRows))
	return rep, nil
}

// resolve labels one fixation cell and updates the run tallies. A
// non-fixation marker comes back unchanged.
func (rep *Report) resolve(pm models.PositionMap, cell interface{}, rowNum int, column string, logger *zap.Logger) interface{} {
	x, ok := numericFixation(cell)
	if !ok {
		rep.NonFixations++
		return passthrough(cell)
	}
	label := ResolveInterestArea(pm, x)
	switch label {
	case LabelLeft, LabelRight:
		rep.OffSentence++
	case LabelUnresolved:
		rep.Unresolved++
		logger.Warn("fixation matched no word",
			zap.Int("row", rowNum),
			zap.String("column", column),
			zap.Float64("x", x))
	default:
		rep.Resolved++
	}
	return label
}

// regionText coerces a region cell to text. Numeric or missing cells
// are treated as empty regions rather than errors.
func regionText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// passthrough returns a non-fixation cell unchanged, keeping its
// original textual form.
func passthrough(v interface{}) interface{} {
	if v == nil {
		return ""
	}
	return v
}
