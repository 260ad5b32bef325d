package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"synstatement/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "synstatement",
	Short: "Generate synthetic supplier statements with ground-truth labels",
	Long: `synstatement produces realistic-looking supplier account statements as
PDF documents in five distinct house styles, paired with structured
ground-truth JSON labels, for use as training and evaluation fixtures
in OCR and document-understanding pipelines.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Debug().
			Str("version", version).
			Msg("synstatement CLI executed")

		fmt.Println("synstatement - synthetic supplier statement generator")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
