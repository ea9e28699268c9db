package sheets

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
)

// Converter splits a timesheet workbook into one CSV per sheet, the input
// [Renamer] expects.
type Converter struct {
	logger *logger.Logger
}

func NewConverter(logger *logger.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert writes every sheet of the workbook at path to "{sheet}.csv" in
// outDir, creating outDir when needed. Rows are padded to the widest row of
// their sheet. The written paths are returned in sheet order; the first
// failure stops the run.
func (c *Converter) Convert(path, outDir string) ([]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() {
		if err := book.Close(); err != nil {
			c.logger.Warn().Err(err).Str("workbook", path).Msg("closing workbook failed")
		}
	}()

	if err = os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	var written []string
	for _, sheet := range book.GetSheetList() {
		rows, err := book.GetRows(sheet)
		if err != nil {
			return written, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		target := filepath.Join(outDir, sheet+".csv")
		if err = writeCSV(target, padRows(rows)); err != nil {
			return written, fmt.Errorf("write sheet %q: %w", sheet, err)
		}

		c.logger.Info().Str("sheet", sheet).Int("rows", len(rows)).Str("to", target).Msg("sheet converted")
		written = append(written, target)
	}

	return written, nil
}

// padRows fills short rows with empty cells; excelize drops trailing blanks.
func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err = w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
