package ialabel

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gazelab/ialabel/pkg/ialabel/models"
)

// Region numbers of the four sentence zones. The first word of the
// beginning region is always labeled "1.1"; whole-region numbers alone
// ("1", "2", ...) are never used as labels.
const (
	RegionBeginning = 1
	RegionPretarget = 2
	RegionTarget    = 3
	RegionEnding    = 4
)

// layout is the accumulator threaded through the word fold: the running
// right edge of the last word placed, and the space flag that widens
// every word after the first by one character.
type layout struct {
	cursor    int
	spaceFlag int
}

// BuildWordPositions computes the pixel interval of every word in the
// sentence formed by the four region texts. Words are split on
// whitespace; an empty region contributes nothing. Each word's width is
// geom.PPC * (rune count + space flag), and consecutive intervals abut,
// starting at geom.Offset.
func BuildWordPositions(beginning, pretarget, target, ending string, geom Geometry) models.PositionMap {
	var pm models.PositionMap
	st := layout{cursor: geom.Offset}
	regions := []struct {
		num  int
		text string
	}{
		{RegionBeginning, beginning},
		{RegionPretarget, pretarget},
		{RegionTarget, target},
		{RegionEnding, ending},
	}
	for _, r := range regions {
		pm, st = placeRegion(pm, st, r.num, r.text, geom)
	}
	return pm
}

func placeRegion(pm models.PositionMap, st layout, region int, text string, geom Geometry) (models.PositionMap, layout) {
	for i, word := range strings.Fields(text) {
		width := geom.PPC * (utf8.RuneCountInString(word) + st.spaceFlag)
		span := models.Interval{Start: st.cursor, End: st.cursor + width}
		pm = append(pm, models.WordSpan{
			Label: fmt.Sprintf("%d.%d", region, i+1),
			Span:  span,
		})
		st.cursor = span.End
		st.spaceFlag = 1
	}
	return pm, st
}

// EncodePositions serializes a position map for storage in the
// WordPositions output column: a compact JSON object with keys in
// reading order, e.g. {"1.1":[281,295],"1.2":[295,351]}.
func EncodePositions(pm models.PositionMap) (string, error) {
	data, err := json.Marshal(pm)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodePositions parses a serialized WordPositions cell back into a
// position map in reading order.
func DecodePositions(s string) (models.PositionMap, error) {
	var pm models.PositionMap
	if err := json.Unmarshal([]byte(s), &pm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPositions, err)
	}
	return pm, nil
}
