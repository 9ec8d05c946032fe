package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbsa71/cv-generator/internal/history"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs",
	RunE:  runHistory,
}

var (
	historyStoreDir string
	historyLimit    int
)

func init() {
	historyCommand.Flags().StringVar(&historyStoreDir, "history-dir", "", "Run history directory (defaults to CVGEN_HISTORY_DIR or .cvgen)")
	historyCommand.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to list (0 for all)")

	rootCmd.AddCommand(historyCommand)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	dir := historyStoreDir
	if dir == "" {
		dir = historyDir()
	}

	store, err := history.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID)
		fmt.Fprintf(out, "  export: %s  config: %s\n", run.BundlePath, run.ConfigPath)
		fmt.Fprintf(out, "  outputs: %s  (%d positions, %d pages)\n",
			strings.Join(run.Outputs, ", "), run.PositionCount, run.PageCount)
		if len(run.DroppedSkills) > 0 {
			fmt.Fprintf(out, "  dropped skills: %s\n", strings.Join(run.DroppedSkills, ", "))
		}
	}
	return nil
}
