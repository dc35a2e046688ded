package ialabel

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gazelab/ialabel/pkg/ialabel/models"
)

func testGeometry() Geometry {
	return Geometry{Offset: 281, PPC: 14, IATop: 514, IAHeight: 76}
}

func schoolSentence() models.PositionMap {
	return BuildWordPositions("I did not", "go to", "school", "and stayed home.", testGeometry())
}

func TestBuildWordPositions(t *testing.T) {
	pm := schoolSentence()

	expected := []struct {
		label      string
		start, end int
	}{
		{"1.1", 281, 295}, // "I": 14 * 1, no leading space
		{"1.2", 295, 351}, // "did": 14 * (3+1)
		{"1.3", 351, 407},
		{"2.1", 407, 449},
		{"2.2", 449, 491},
		{"3.1", 491, 589}, // "school": 14 * (6+1)
		{"4.1", 589, 645},
		{"4.2", 645, 743},
		{"4.3", 743, 827}, // "home.": punctuation counts as a character
	}

	if len(pm) != len(expected) {
		t.Fatalf("Expected %d words, got %d", len(expected), len(pm))
	}
	for i, want := range expected {
		got := pm[i]
		if got.Label != want.label {
			t.Errorf("word %d: expected label %q, got %q", i, want.label, got.Label)
		}
		if got.Span.Start != want.start || got.Span.End != want.end {
			t.Errorf("%s: expected (%d, %d), got (%d, %d)",
				want.label, want.start, want.end, got.Span.Start, got.Span.End)
		}
	}
}

func TestBuildWordPositionsEmptyRegions(t *testing.T) {
	geom := testGeometry()

	pm := BuildWordPositions("", "", "", "", geom)
	if len(pm) != 0 {
		t.Errorf("Expected no words for empty regions, got %d", len(pm))
	}

	// An empty middle region contributes nothing and leaves no gap.
	pm = BuildWordPositions("ab", "", "cd", "", geom)
	if len(pm) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(pm))
	}
	if pm[0].Label != "1.1" || pm[1].Label != "3.1" {
		t.Errorf("Expected labels 1.1 and 3.1, got %s and %s", pm[0].Label, pm[1].Label)
	}
	if pm[0].Span.End != pm[1].Span.Start {
		t.Errorf("Expected abutting spans across the empty region, got end %d and start %d",
			pm[0].Span.End, pm[1].Span.Start)
	}
	// The space flag survives the empty region: "cd" is 14 * (2+1).
	if width := pm[1].Span.End - pm[1].Span.Start; width != 42 {
		t.Errorf("Expected width 42 for second word, got %d", width)
	}
}

func TestBuildWordPositionsInvariants(t *testing.T) {
	pm := schoolSentence()

	if pm[0].Span.Start != testGeometry().Offset {
		t.Errorf("Expected first span to start at offset %d, got %d",
			testGeometry().Offset, pm[0].Span.Start)
	}
	for i := 1; i < len(pm); i++ {
		if pm[i-1].Span.End != pm[i].Span.Start {
			t.Errorf("Spans %s and %s do not abut: end %d, start %d",
				pm[i-1].Label, pm[i].Label, pm[i-1].Span.End, pm[i].Span.Start)
		}
	}
	for _, ws := range pm {
		if ws.Span.Start >= ws.Span.End {
			t.Errorf("%s: degenerate span (%d, %d)", ws.Label, ws.Span.Start, ws.Span.End)
		}
	}
}

func TestBuildWordPositionsMultiByte(t *testing.T) {
	// Accented characters count as one character, not one byte.
	pm := BuildWordPositions("été", "", "", "", testGeometry())
	if len(pm) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(pm))
	}
	if width := pm[0].Span.End - pm[0].Span.Start; width != 42 {
		t.Errorf("Expected width 42 for 3-character word, got %d", width)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pm := schoolSentence()

	enc, err := EncodePositions(pm)
	if err != nil {
		t.Fatalf("EncodePositions failed: %v", err)
	}
	if !strings.HasPrefix(enc, `{"1.1":[281,295]`) {
		t.Errorf("Unexpected encoding prefix: %s", enc)
	}

	dec, err := DecodePositions(enc)
	if err != nil {
		t.Fatalf("DecodePositions failed: %v", err)
	}
	if len(dec) != len(pm) {
		t.Fatalf("Expected %d words after round trip, got %d", len(pm), len(dec))
	}
	for i := range pm {
		if dec[i] != pm[i] {
			t.Errorf("word %d: expected %+v, got %+v", i, pm[i], dec[i])
		}
	}
}

func TestDecodeRestoresReadingOrder(t *testing.T) {
	// A region with more than nine words checks that decoded order is
	// numeric: "1.10" must follow "1.9", not "1.1".
	words := make([]string, 12)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	pm := BuildWordPositions(strings.Join(words, " "), "", "", "", testGeometry())

	enc, err := EncodePositions(pm)
	if err != nil {
		t.Fatalf("EncodePositions failed: %v", err)
	}
	dec, err := DecodePositions(enc)
	if err != nil {
		t.Fatalf("DecodePositions failed: %v", err)
	}
	for i := range pm {
		if dec[i].Label != pm[i].Label {
			t.Errorf("position %d: expected %s, got %s", i, pm[i].Label, dec[i].Label)
		}
	}
}
