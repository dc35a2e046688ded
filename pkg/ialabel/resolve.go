package ialabel

import (
	"github.com/gazelab/ialabel/pkg/ialabel/models"
	"github.com/gazelab/ialabel/pkg/ialabel/output"
)

// Labels returned by the resolver for fixations that match no word.
const (
	// LabelLeft marks a fixation left of the sentence's first word.
	LabelLeft = "left"
	// LabelRight marks a fixation right of the sentence's last word.
	LabelRight = "right"
	// LabelUnresolved marks a fixation inside the sentence bounds that
	// matched no interval. The builder leaves no gaps, so this only
	// appears for position maps produced elsewhere, or for rows whose
	// WordPositions cell failed to decode.
	LabelUnresolved = "unresolved"
)

// ResolveInterestArea returns the label of the word whose interval
// contains the fixation x-coordinate. Intervals are left-open and
// right-closed, so a fixation exactly on a word's right edge belongs to
// that word. A fixation exactly on the sentence's left edge resolves to
// the first word; outside the sentence it resolves to LabelLeft or
// LabelRight.
func ResolveInterestArea(pm models.PositionMap, fixation float64) string {
	if len(pm) == 0 {
		return LabelUnresolved
	}
	for _, ws := range pm {
		if ws.Span.Contains(fixation) {
			return ws.Label
		}
	}
	min, max := pm.Bounds()
	switch {
	case fixation == float64(min):
		// The left-open rule excludes the global left edge; attribute
		// it to the first word.
		return pm[0].Label
	case fixation < float64(min):
		return LabelLeft
	case fixation > float64(max):
		return LabelRight
	}
	return LabelUnresolved
}

// ResolveSerialized resolves a fixation cell against a serialized
// WordPositions value, as stored in a previously produced output table.
// A non-numeric fixation cell is a non-fixation marker and is returned
// unchanged without decoding the positions.
func ResolveSerialized(positions string, fixation interface{}) (string, error) {
	x, ok := numericFixation(fixation)
	if !ok {
		return output.FormatCell(fixation), nil
	}
	pm, err := DecodePositions(positions)
	if err != nil {
		return LabelUnresolved, err
	}
	return ResolveInterestArea(pm, x), nil
}

// numericFixation extracts a pixel coordinate from a table cell.
// Anything non-numeric (the original reports use ".") is a non-fixation
// marker.
func numericFixation(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
