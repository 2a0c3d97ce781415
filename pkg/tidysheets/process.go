package tidysheets

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/parser"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/tidy"
)

var yearPattern = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(?:\D|$)`)

// LocateSheet opens the workbook at path and returns its data sheet name.
func LocateSheet(path string, opts Options) (string, error) {
	f, err := parser.OpenWorkbook(path)
	if err != nil {
		return "", NewFileError(path, StageOpen, err)
	}
	defer f.Close()

	sheet, err := parser.LocateSheet(f, opts.SheetPattern)
	if err != nil {
		return "", NewFileError(path, StageLocate, err)
	}
	return sheet, nil
}

// ReadTable opens the workbook at path and reads sheet at opts.SkipRows.
func ReadTable(path, sheet string, opts Options) (*models.RawTable, error) {
	f, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, NewFileError(path, StageOpen, err)
	}
	defer f.Close()

	raw, err := parser.ReadTable(f, sheet, opts.SkipRows)
	if err != nil {
		return nil, NewFileError(path, StageRead, err)
	}
	return raw, nil
}

// ProcessFile runs the whole pipeline on one workbook. Every error is a
// *FileError naming path and the failing stage.
func ProcessFile(path string, opts Options) (*models.CleanTable, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewFileError(path, StageOptions, err)
	}

	f, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, NewFileError(path, StageOpen, err)
	}
	defer f.Close()

	sheet, err := parser.LocateSheet(f, opts.SheetPattern)
	if err != nil {
		return nil, NewFileError(path, StageLocate, err)
	}

	raw, err := parser.ReadTable(f, sheet, opts.SkipRows)
	if err != nil {
		return nil, NewFileError(path, StageRead, err)
	}

	filtered, err := tidy.FilterBlank(tidy.Normalize(raw), opts.NameColumn)
	if err != nil {
		return nil, NewFileError(path, StageFilter, err)
	}

	selected, err := tidy.Select(filtered, tidy.BlockColumns(opts.NameColumn, opts.CountColumn, opts.Blocks))
	if err != nil {
		return nil, NewFileError(path, StageSelect, err)
	}

	table, err := tidy.Reshape(selected, tidy.BlockPairs(opts.NameColumn, opts.CountColumn, opts.Blocks))
	if err != nil {
		return nil, NewFileError(path, StageReshape, err)
	}

	table.Source = path
	table.Sheet = sheet
	table.Year = YearOf(sheet, filepath.Base(path))
	return table, nil
}

// ProcessDir discovers the workbooks in dir and processes each one.
// Per-file failures are collected in the result and never stop the
// remaining files; the returned error is reserved for invalid options,
// discovery failure, and cancellation of ctx, which stops scheduling and
// returns the partial result. Results keep discovery order regardless of
// opts.Workers.
func ProcessDir(ctx context.Context, dir string, opts Options) (*models.BatchResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	paths, err := parser.ListFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	log.Debug("discovered workbooks", zap.String("dir", dir), zap.Int("count", len(paths)))

	tables := make([]*models.CleanTable, len(paths))
	errs := make([]error, len(paths))
	scheduled := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			tables[i], errs[i] = ProcessFile(path, opts)
			return nil
		})
	}
	_ = g.Wait()

	result := &models.BatchResult{}
	for i, path := range paths[:scheduled] {
		if errs[i] != nil {
			log.Warn("workbook skipped", zap.String("path", path), zap.Error(errs[i]))
			result.Failures = append(result.Failures, models.FileFailure{
				Path:    path,
				Err:     errs[i],
				Message: errs[i].Error(),
			})
			continue
		}
		log.Debug("workbook cleaned",
			zap.String("path", path),
			zap.String("sheet", tables[i].Sheet),
			zap.Int("records", len(tables[i].Records)))
		result.Tables = append(result.Tables, *tables[i])
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// YearOf returns the first year (1900-2099) found in the given names, in
// order, or 0.
func YearOf(names ...string) int {
	for _, name := range names {
		if m := yearPattern.FindStringSubmatch(name); m != nil {
			year, _ := strconv.Atoi(m[1])
			return year
		}
	}
	return 0
}
