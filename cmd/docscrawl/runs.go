package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"docscrawl/internal/config"
	"docscrawl/internal/database"
)

// NewRunsCmd creates the runs command.
func NewRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past crawl runs",
		Long: `Runs lists the crawl history stored in the run database: when each
crawl ran, its scope, and its final counters.`,
		Args: cobra.NoArgs,
		RunE: runRunsCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory holding the run-history database")

	return cmd
}

// runRunsCmd executes the runs command.
func runRunsCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s\n", run.StartedAt.Local().Format("2006-01-02 15:04"), run.StartURL)
		fmt.Fprintf(out, "    id: %s\n", run.ID)
		fmt.Fprintf(out, "    pages: %d (%d ok, %d failed)  images: %d  videos: %d  duration: %s\n",
			run.Processed, run.Succeeded, run.Failed,
			run.UniqueImages, run.UniqueYoutube,
			run.Duration().Round(time.Second))
		fmt.Fprintf(out, "    output: %s\n\n", run.OutputDir)
	}
	return nil
}
