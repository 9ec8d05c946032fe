package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbsa71/cv-generator/internal/pipeline"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Validate an export against the curation config without rendering",
	Long: `Runs ingestion and transformation only. Reports curation problems
(uncategorized skills, missing required records, malformed CSV) and exits
non-zero if any are found. No files are written.`,
	RunE: runCheck,
}

var (
	checkExport  string
	checkConfig  string
	checkVerbose bool
)

func init() {
	checkCommand.Flags().StringVarP(&checkExport, "export", "e", "export", "Path to the data export (directory or .zip)")
	checkCommand.Flags().StringVarP(&checkConfig, "config", "c", "cv-config.json", "Path to the curation config file")
	checkCommand.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(checkCommand)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		BundlePath: checkExport,
		ConfigPath: checkConfig,
		CheckOnly:  true,
		Verbose:    checkVerbose,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ok: %d positions, %d skill categories\n",
		len(result.Data.Positions), len(result.Data.SkillCategories))
	if len(result.DroppedSkills) > 0 {
		fmt.Fprintf(out, "warning: %d uncategorized skills would be dropped\n", len(result.DroppedSkills))
		for _, skill := range result.DroppedSkills {
			fmt.Fprintf(out, "  - %s\n", skill)
		}
	}
	return nil
}
