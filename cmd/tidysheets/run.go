package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/tidysheets-go/internal/config"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/output"
)

var (
	outputPath string
	format     string
	pretty     bool
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run DIR",
		Short: "Clean every workbook in DIR and write the long table",
		Args:  cobra.ExactArgs(1),
		RunE:  runTidy,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", config.FormatJSON, "Output format: json, csv, or xlsx")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runTidy(cmd *cobra.Command, args []string) error {
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

	records := models.Concat(result.Tables)
	if err := writeRecords(cmd, cfg.Output, records); err != nil {
		return err
	}

	logger.Info("run finished",
		zap.String("dir", args[0]),
		zap.Int("tables", len(result.Tables)),
		zap.Int("records", len(records)),
		zap.Int("failures", len(result.Failures)),
	)
	if !result.OK() {
		return fmt.Errorf("%d of %d files failed", len(result.Failures), len(result.Failures)+len(result.Tables))
	}
	return nil
}

func writeRecords(cmd *cobra.Command, out config.OutputConfig, records []models.LongRecord) error {
	if out.Format == config.FormatXLSX {
		if err := output.WriteXLSX(out.Path, records); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	switch out.Format {
	case config.FormatCSV:
		if err := output.WriteCSV(&buf, records); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	default:
		data, err := output.ToJSON(records, out.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	if out.Path != "" {
		if err := os.WriteFile(out.Path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
