// Package main provides the CLI entry point for ialabel.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gazelab/ialabel/pkg/ialabel"
	"github.com/gazelab/ialabel/pkg/ialabel/output"
)

var (
	outputPath   string
	sheet        string
	suffix       string
	geometryPath string
	offset       int
	ppc          int
	iaTop        int
	iaHeight     int
	verbose      bool

	logger *zap.Logger
)

func main() {
	defaults := ialabel.DefaultGeometry()

	rootCmd := &cobra.Command{
		Use:   "ialabel [input.xlsx]",
		Short: "Label eye-tracking fixations with word-level interest areas",
		Long: `ialabel reads a fixation report recorded during a reading experiment,
computes the pixel interval of every word from the four sentence regions
(beginning, pretarget, target word, ending), and labels the current and
next fixation of each row with the word it landed on (e.g. "2.1" for the
first word of the pretarget region). The augmented table is written as
tab-delimited text.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input stem + suffix)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	rootCmd.Flags().StringVar(&suffix, "suffix", ialabel.DefaultOutputSuffix, "Suffix appended to the input stem for the output filename")
	rootCmd.Flags().StringVar(&geometryPath, "geometry", "", "YAML file with screen geometry (offset, ppc, ia_top, ia_height)")
	rootCmd.Flags().IntVar(&offset, "offset", defaults.Offset, "Left-edge pixel offset of the sentence")
	rootCmd.Flags().IntVar(&ppc, "ppc", defaults.PPC, "Pixels per character")
	rootCmd.Flags().IntVar(&iaTop, "ia-top", defaults.IATop, "Top y-coordinate of the interest areas")
	rootCmd.Flags().IntVar(&iaHeight, "ia-height", defaults.IAHeight, "Height of the interest areas")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	geom := ialabel.DefaultGeometry()
	if geometryPath != "" {
		var err error
		geom, err = ialabel.LoadGeometry(geometryPath)
		if err != nil {
			return fmt.Errorf("failed to load geometry: %w", err)
		}
	}
	// Explicit flags win over the geometry file.
	if cmd.Flags().Changed("offset") {
		geom.Offset = offset
	}
	if cmd.Flags().Changed("ppc") {
		geom.PPC = ppc
	}
	if cmd.Flags().Changed("ia-top") {
		geom.IATop = iaTop
	}
	if cmd.Flags().Changed("ia-height") {
		geom.IAHeight = iaHeight
	}

	opts := ialabel.Options{
		Geometry: geom,
		Sheet:    sheet,
		Logger:   logger,
	}

	rep, err := ialabel.Process(inputPath, opts)
	if err != nil {
		return fmt.Errorf("labeling failed: %w", err)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = output.Path(inputPath, suffix)
	}
	if err := output.WriteTSVFile(outPath, rep.Table); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("output written", zap.String("path", outPath))

	if rep.FailedRows > 0 {
		return fmt.Errorf("%d of %d rows failed", rep.FailedRows, rep.Rows)
	}
	return nil
}
