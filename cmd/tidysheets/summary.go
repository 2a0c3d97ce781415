package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary DIR",
		Short: "Print count statistics for each cleaned workbook in DIR",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := cfg.PipelineOptions()
	opts.Logger = logger

	result, err := tidysheets.ProcessDir(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tNAMES\tTOTAL\tMEAN\tMEDIAN\tTOP\tSOURCE")
	for i := range result.Tables {
		s, err := tidysheets.Summarize(&result.Tables[i])
		if err != nil {
			return fmt.Errorf("summarize %s: %w", result.Tables[i].Source, err)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.1f\t%.1f\t%s (%d)\t%s\n",
			s.Year, s.Names, s.Total, s.Mean, s.Median, s.TopName, s.Max, s.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !result.OK() {
		return fmt.Errorf("%d files failed", len(result.Failures))
	}
	return nil
}
