// Package ialabel converts raw fixation x-coordinates from a reading
// experiment into word-level interest-area labels.
package ialabel

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Geometry describes how the stimulus sentence was rendered on screen.
// All values are pixels; they depend on the font and display used for
// the recording session.
type Geometry struct {
	// Offset is the x-coordinate at which the sentence begins.
	Offset int `yaml:"offset"`
	// PPC is the width of one character (monospace rendering assumed).
	PPC int `yaml:"ppc"`
	// IATop is the y-coordinate of the top edge of the interest areas.
	// Reserved for a future vertical check; not used in x-resolution.
	IATop int `yaml:"ia_top"`
	// IAHeight is the height of the interest areas. Reserved alongside
	// IATop.
	IAHeight int `yaml:"ia_height"`
}

// DefaultGeometry returns the geometry of the original recording setup.
func DefaultGeometry() Geometry {
	return Geometry{
		Offset:   281,
		PPC:      14,
		IATop:    514,
		IAHeight: 76,
	}
}

// LoadGeometry reads a YAML geometry file. Keys absent from the file
// keep their default values.
func LoadGeometry(path string) (Geometry, error) {
	geom := DefaultGeometry()
	data, err := os.ReadFile(path)
	if err != nil {
		return geom, err
	}
	if err := yaml.Unmarshal(data, &geom); err != nil {
		return geom, fmt.Errorf("invalid geometry file %s: %w", path, err)
	}
	return geom, nil
}

// DefaultOutputSuffix is appended to the input file's stem to form the
// output filename.
const DefaultOutputSuffix = "_With_IA.tsv"

// Options configures a labeling run.
type Options struct {
	// Geometry is the screen geometry used for word-boundary computation.
	Geometry Geometry
	// Sheet selects the worksheet to read. Empty means the first sheet.
	Sheet string
	// Logger receives per-row warnings and the run summary.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Geometry: DefaultGeometry(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
