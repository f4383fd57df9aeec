package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docscrawl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docscrawl",
		Short: "Scoped breadth-first crawler for documentation sites",
		Long: `docscrawl crawls a documentation site breadth-first, restricted to one
host and path prefix. Each page is rendered in a headless browser so
JavaScript-built content is captured, converted to markdown, and written
as JSONL records together with the images and video links it references.

Authenticated sites are supported via a saved cookie file (--cookies-file).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewRunsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
