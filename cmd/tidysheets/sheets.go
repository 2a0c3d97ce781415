package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/parser"
)

func newSheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets FILE",
		Short: "List the sheets of FILE and mark the one the pattern selects",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}
}

func runSheets(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := parser.OpenWorkbook(args[0])
	if err != nil {
		return tidysheets.NewFileError(args[0], tidysheets.StageOpen, err)
	}
	defer f.Close()

	located, locErr := parser.LocateSheet(f, cfg.Pipeline.SheetPattern)
	matches := parser.MatchSheets(f.GetSheetList(), cfg.Pipeline.SheetPattern)

	out := cmd.OutOrStdout()
	for _, name := range f.GetSheetList() {
		mark := " "
		switch {
		case name == located:
			mark = "*"
		case slices.Contains(matches, name):
			mark = "?"
		}
		fmt.Fprintf(out, "%s %s\n", mark, name)
	}

	if locErr != nil {
		return tidysheets.NewFileError(args[0], tidysheets.StageLocate, locErr)
	}
	return nil
}
