package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbsa71/cv-generator/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a CV from a data export",
	Long: `Loads a personal data export (a directory of CSV files or a .zip archive),
applies the curation config (skill aliases, categories, per-position skills)
and writes the rendered CV in the requested formats.`,
	RunE: runGenerate,
}

var (
	generateExport     string
	generateConfig     string
	generateOutputDir  string
	generateOutputName string
	generateFormats    []string
	generateHistoryDir string
	generateNoHistory  bool
	generateVerbose    bool
)

func init() {
	generateCommand.Flags().StringVarP(&generateExport, "export", "e", "export", "Path to the data export (directory or .zip)")
	generateCommand.Flags().StringVarP(&generateConfig, "config", "c", "cv-config.json", "Path to the curation config file")
	generateCommand.Flags().StringVarP(&generateOutputDir, "out", "o", "out", "Output directory")
	generateCommand.Flags().StringVar(&generateOutputName, "name", "cv", "Output base name (without extension)")
	generateCommand.Flags().StringSliceVarP(&generateFormats, "format", "f", []string{pipeline.FormatPDF, pipeline.FormatHTML}, "Output formats (pdf, html)")
	generateCommand.Flags().StringVar(&generateHistoryDir, "history-dir", "", "Run history directory (defaults to CVGEN_HISTORY_DIR or .cvgen)")
	generateCommand.Flags().BoolVar(&generateNoHistory, "no-history", false, "Skip recording the run")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCommand)
}

func historyDir() string {
	if generateHistoryDir != "" {
		return generateHistoryDir
	}
	if dir := os.Getenv("CVGEN_HISTORY_DIR"); dir != "" {
		return dir
	}
	return ".cvgen"
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts := pipeline.RunOptions{
		BundlePath: generateExport,
		ConfigPath: generateConfig,
		OutputDir:  generateOutputDir,
		OutputName: generateOutputName,
		Formats:    generateFormats,
		Verbose:    generateVerbose,
	}
	if !generateNoHistory {
		opts.HistoryDir = historyDir()
	}

	result, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	for _, path := range result.Outputs {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	if result.PageCount > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d pages\n", result.PageCount)
	}
	return nil
}
