package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"synstatement/internal/logger"
	"synstatement/internal/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score [extracted-dir]",
	Short: "Score extraction output against ground-truth records",
	Long: `Compare an extraction system's output against the ground-truth files
written by the generate command.

Extraction files are matched by base name: the output for
statement_001_SheldonCreek.pdf is read from
statement_001_SheldonCreek.json in the extracted directory. String
fields compare exactly (after trimming); monetary fields compare within
an absolute tolerance. A ground truth without a matching extraction
file is counted as missing, not an error.`,
	Example: `  # Score ./extracted against the ground truth in ./fixtures
  synstatement score ./extracted --truth-dir ./fixtures

  # Looser tolerance, report to file
  synstatement score ./extracted --truth-dir ./fixtures --tolerance 0.05 -o report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("truth-dir", "", "Directory containing *_ground_truth.json files [REQUIRED]")
	scoreCmd.Flags().Float64("tolerance", score.DefaultTolerance, "Absolute tolerance for monetary comparisons")
	scoreCmd.Flags().StringP("output", "o", "", "Report output file (default: stdout)")

	scoreCmd.MarkFlagRequired("truth-dir")
}

func runScore(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("score")

	truthDir, _ := cmd.Flags().GetString("truth-dir")
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	outputPath, _ := cmd.Flags().GetString("output")
	extractedDir := args[0]

	log.Info().
		Str("truth_dir", truthDir).
		Str("extracted_dir", extractedDir).
		Float64("tolerance", tolerance).
		Msg("Starting extraction scoring")

	scorer := score.NewScorer(tolerance)
	report, err := scorer.ScoreDirs(truthDir, extractedDir)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := score.WriteReport(outputPath, report); err != nil {
			return err
		}
		log.Info().Str("output_file", outputPath).Msg("Report written")
	} else {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Scored %d files (%d missing): %.1f%% field accuracy\n",
		report.FilesScored, report.FilesMissing, report.Accuracy*100)

	return nil
}
