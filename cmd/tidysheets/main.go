// Package main provides the CLI entry point for tidysheets.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
	pattern    string
	skipRows   int
	workers    int
	debug      bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tidysheets",
		Short: "Reshape yearly ranked-name workbooks into one tidy table",
		Long: `tidysheets finds the "Table 1" sheet of every workbook in a directory,
reads its side-by-side (name, count) blocks and stacks them into a long table.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file with TIDYSHEETS_* variables (ignored if missing)")
	flags.StringVar(&pattern, "pattern", "", `substring identifying the data sheet (default "Table 1")`)
	flags.IntVar(&skipRows, "skip-rows", 0, "rows above the header row (default 6)")
	flags.IntVar(&workers, "workers", 0, "files processed concurrently (default 1)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newSheetsCommand())
	rootCmd.AddCommand(newSummaryCommand())
	return rootCmd
}
