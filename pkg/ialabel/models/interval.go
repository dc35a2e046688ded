// Package models defines data structures for fixation labeling.
package models

import (
	"encoding/json"
	"fmt"
)

// Interval is the pixel span attributed to one word: Start exclusive,
// End inclusive for fixation matching.
type Interval struct {
	Start int
	End   int
}

// Contains reports whether a fixation x-coordinate falls inside the
// interval under the left-open, right-closed rule.
func (iv Interval) Contains(x float64) bool {
	return float64(iv.Start) < x && x <= float64(iv.End)
}

// MarshalJSON encodes the interval as a two-element array [start, end].
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{iv.Start, iv.End})
}

// UnmarshalJSON decodes a two-element array [start, end].
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("interval must be a [start, end] pair: %w", err)
	}
	iv.Start, iv.End = pair[0], pair[1]
	return nil
}
