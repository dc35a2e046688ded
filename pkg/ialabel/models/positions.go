package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// WordSpan pairs a word label ("region.index", e.g. "2.1") with its
// pixel interval.
type WordSpan struct {
	Label string
	Span  Interval
}

// PositionMap is the word-position map of one row: word labels and their
// intervals in reading order (regions 1-4, word order within each region).
// Consecutive spans abut, so Span.End of entry i equals Span.Start of
// entry i+1.
type PositionMap []WordSpan

// Bounds returns the minimum and maximum pixel endpoints across all
// spans. It must not be called on an empty map.
func (pm PositionMap) Bounds() (min, max int) {
	return pm[0].Span.Start, pm[len(pm)-1].Span.End
}

// MarshalJSON encodes the map as a compact JSON object in reading order,
// e.g. {"1.1":[281,295],"1.2":[295,351]}.
func (pm PositionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ws := range pm {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ws.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(ws.Span)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of label -> [start, end] pairs and
// restores reading order by sorting labels numerically (region, then
// index), so "1.2" sorts before "1.10".
func (pm *PositionMap) UnmarshalJSON(data []byte) error {
	var raw map[string]Interval
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	spans := make(PositionMap, 0, len(raw))
	for label, span := range raw {
		if _, _, err := ParseLabel(label); err != nil {
			return err
		}
		spans = append(spans, WordSpan{Label: label, Span: span})
	}
	sort.Slice(spans, func(i, j int) bool {
		ri, ii, _ := ParseLabel(spans[i].Label)
		rj, ij, _ := ParseLabel(spans[j].Label)
		if ri != rj {
			return ri < rj
		}
		return ii < ij
	})
	*pm = spans
	return nil
}

// ParseLabel splits a word label into its region and word index.
func ParseLabel(label string) (region, index int, err error) {
	dot := strings.IndexByte(label, '.')
	if dot < 0 {
		return 0, 0, fmt.Errorf("malformed word label %q", label)
	}
	region, err = strconv.Atoi(label[:dot])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed word label %q", label)
	}
	index, err = strconv.Atoi(label[dot+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed word label %q", label)
	}
	return region, index, nil
}
