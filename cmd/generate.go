package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"synstatement/internal/batch"
	"synstatement/internal/config"
	"synstatement/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate [output-dir]",
	Short: "Generate a batch of statement PDFs with ground-truth labels",
	Long: `Generate a batch of synthetic supplier statements as PDF documents.

Statements cycle round-robin through the five house styles. Each
successfully rendered document gets a matching ground-truth JSON file
(unless disabled) containing the statement data and the derived labels
an extraction system is scored against.

A per-statement failure is logged and skipped; the batch always runs to
completion. The output directory is created if it does not exist.

Optional environment variables:
  OPENAI_API_KEY        - enables generated company profiles with --openai
  OPENAI_MODEL          - chat model for profile generation (default: gpt-3.5-turbo)
  STATEMENT_OUTPUT_DIR  - default output directory
  BATCH_WORKERS         - default number of parallel workers`,
	Example: `  # Generate 25 statements with ground truth into the default directory
  synstatement generate

  # Generate 100 statements into ./fixtures with a run manifest
  synstatement generate ./fixtures --count 100 --manifest

  # Reproducible run with a fixed seed, no ground truth
  synstatement generate ./fixtures --seed 42 --ground-truth=false

  # Use OpenAI-generated company profiles
  synstatement generate --openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("count", "c", 25, "Number of statements to generate")
	generateCmd.Flags().Bool("ground-truth", true, "Write a ground-truth JSON file per statement")
	generateCmd.Flags().Bool("manifest", false, "Write a manifest.xlsx summary of the run")
	generateCmd.Flags().Int("workers", 0, "Number of parallel workers (default: BATCH_WORKERS)")
	generateCmd.Flags().IntP("transactions", "t", 10, "Transactions per statement")
	generateCmd.Flags().Int64("seed", 0, "Base random seed (0 = time-derived)")
	generateCmd.Flags().Bool("openai", false, "Generate company profiles with OpenAI (requires OPENAI_API_KEY)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	count, _ := cmd.Flags().GetInt("count")
	groundTruth, _ := cmd.Flags().GetBool("ground-truth")
	manifest, _ := cmd.Flags().GetBool("manifest")
	workers, _ := cmd.Flags().GetInt("workers")
	transactions, _ := cmd.Flags().GetInt("transactions")
	seed, _ := cmd.Flags().GetInt64("seed")
	useOpenAI, _ := cmd.Flags().GetBool("openai")

	outputDir := cfg.OutputDir
	if len(args) == 1 {
		outputDir = args[0]
	}
	if workers < 1 {
		workers = cfg.BatchWorkers
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	openAIKey := ""
	if useOpenAI {
		if cfg.OpenAIAPIKey == "" {
			log.Warn().Msg("--openai requested but OPENAI_API_KEY is not set, using static company pool")
		}
		openAIKey = cfg.OpenAIAPIKey
	}

	log.Info().
		Str("output_dir", outputDir).
		Int("count", count).
		Int("workers", workers).
		Bool("ground_truth", groundTruth).
		Bool("openai", openAIKey != "").
		Msg("Starting statement generation")

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("              STATEMENT GENERATION")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Output directory: %s\n", outputDir)
	fmt.Printf("Statements: %d (%d workers)\n", count, workers)
	if !groundTruth {
		fmt.Println("Ground truth: disabled")
	}
	fmt.Println()

	runner := batch.NewRunner(batch.Options{
		OutputDir:        outputDir,
		Count:            count,
		GroundTruth:      groundTruth,
		Manifest:         manifest,
		Workers:          workers,
		TransactionCount: transactions,
		Seed:             seed,
		OpenAIKey:        openAIKey,
		OpenAIModel:      cfg.OpenAIModel,
	})

	result, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Generated: %d\n", len(result.Generated))
	if len(result.Failures) > 0 {
		fmt.Printf("Failed: %d\n", len(result.Failures))
	}
	if result.ManifestPath != "" {
		fmt.Printf("Manifest: %s\n", result.ManifestPath)
	}
	fmt.Printf("Duration: %v\n", result.Duration.Round(time.Millisecond))
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
