package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"synstatement/internal/entity"
	"synstatement/internal/logger"
	"synstatement/internal/render"
	"synstatement/internal/statement"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Synthesize one statement and print its ground-truth record",
	Long: `Synthesize a single statement and print the ground-truth JSON that
would accompany it, without running a batch. Useful for inspecting the
ledger synthesis and label derivation, and for piping fixtures into
other tools.

With --pdf the rendered document is written as well.`,
	Example: `  # Print one statement's ground truth to stdout
  synstatement preview

  # Reproducible statement with 20 transactions in the Briggs style
  synstatement preview --seed 7 --transactions 20 --style BriggsEquipment

  # Save both the ground truth and the rendered document
  synstatement preview -o truth.json --pdf statement.pdf`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntP("transactions", "t", 10, "Transactions to synthesize")
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 = time-derived)")
	previewCmd.Flags().String("style", string(render.StyleSheldonCreek), "Statement style label")
	previewCmd.Flags().StringP("output", "o", "", "Ground-truth output file (default: stdout)")
	previewCmd.Flags().String("pdf", "", "Also write the rendered PDF to this path")
}

func runPreview(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("preview")

	transactions, _ := cmd.Flags().GetInt("transactions")
	seed, _ := cmd.Flags().GetInt64("seed")
	styleLabel, _ := cmd.Flags().GetString("style")
	outputPath, _ := cmd.Flags().GetString("output")
	pdfPath, _ := cmd.Flags().GetString("pdf")

	style, err := render.ParseStyle(styleLabel)
	if err != nil {
		return fmt.Errorf("invalid --style: %w (valid: %v)", err, render.AllStyles())
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	pool := entity.NewStaticPool(rng)
	stmt := statement.Build(context.Background(), pool, pool, rng, statement.BuildOptions{
		TransactionCount: transactions,
	})

	log.Debug().
		Str("statement_number", stmt.Number).
		Str("style", string(style)).
		Int64("seed", seed).
		Msg("Statement synthesized")

	gt := statement.Projector{GeneratedAt: stmt.Date}.Project(stmt, string(style))
	data, err := json.MarshalIndent(gt, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ground truth: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().Str("output_file", outputPath).Msg("Ground truth written")
	} else {
		fmt.Println(string(data))
	}

	if pdfPath != "" {
		doc, err := render.Render(stmt, style, rng)
		if err != nil {
			return fmt.Errorf("failed to render statement: %w", err)
		}
		if err := os.WriteFile(pdfPath, doc, 0644); err != nil {
			return fmt.Errorf("failed to write PDF file: %w", err)
		}
		log.Info().Str("pdf_file", pdfPath).Int("bytes", len(doc)).Msg("Statement rendered")
	}

	return nil
}
