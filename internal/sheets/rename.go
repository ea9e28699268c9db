// Package sheets renames exported timesheet CSVs after the ISO week they
// cover.
//
// Spreadsheet exports are named "{month}.{n}.csv". Each sheet carries a row
// whose first cell is "Time" followed by one date per day; the mid-week date
// in the fifth cell decides the ISO year and week, so a file becomes e.g.
// "2025_23.csv".
package sheets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
)

// headerRows is how many rows are searched for the "Time" row.
const headerRows = 5

var (
	exportName = regexp.MustCompile(`^\d+\.\d+\.csv$`)

	dateLayouts = []string{
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006",
		"1/2/2006",
		// default short date of xlsx date cells
		"01-02-06",
	}

	ErrNoTimeRow = errors.New(`no "Time" row`)
	ErrNoDate    = errors.New("no parsable date")
)

// Outcome reports what happened to one file.
type Outcome struct {
	From   string
	To     string
	Reason string
}

// Report summarises a rename pass.
type Report struct {
	Renamed []Outcome
	Skipped []Outcome
}

type Renamer struct {
	dryRun bool
	logger *logger.Logger
}

// NewRenamer returns a Renamer. With dryRun set, files are only inspected.
func NewRenamer(dryRun bool, logger *logger.Logger) *Renamer {
	return &Renamer{dryRun: dryRun, logger: logger}
}

// Rename processes every export file in dir in name order. A file is skipped
// when no date can be found or the target name is taken; only a failure to
// list dir is returned as an error.
func (r *Renamer) Rename(dir string) (Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && exportName.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var report Report
	for _, name := range names {
		outcome := r.renameOne(dir, name)
		if outcome.Reason != "" {
			r.logger.Warn().Str("file", name).Str("reason", outcome.Reason).Msg("skipped")
			report.Skipped = append(report.Skipped, outcome)
			continue
		}
		r.logger.Info().Str("file", name).Str("to", outcome.To).Bool("dry_run", r.dryRun).Msg("renamed")
		report.Renamed = append(report.Renamed, outcome)
	}

	return report, nil
}

func (r *Renamer) renameOne(dir, name string) Outcome {
	path := filepath.Join(dir, name)

	date, err := sheetDate(path)
	if err != nil {
		return Outcome{From: name, Reason: err.Error()}
	}

	target := WeekFileName(date)
	targetPath := filepath.Join(dir, target)
	if _, err := os.Stat(targetPath); err == nil {
		return Outcome{From: name, To: target, Reason: "target exists"}
	}

	if !r.dryRun {
		if err := os.Rename(path, targetPath); err != nil {
			return Outcome{From: name, To: target, Reason: err.Error()}
		}
	}
	return Outcome{From: name, To: target}
}

// WeekFileName formats the ISO week of date as "YYYY_WW.csv".
func WeekFileName(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d_%02d.csv", year, week)
}

// sheetDate finds the "Time" row within the first rows of the CSV at path
// and parses the date in its fifth cell, falling back to the second.
func sheetDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for i := 0; i < headerRows; i++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return time.Time{}, err
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) != "Time" {
			continue
		}

		for _, col := range []int{4, 1} {
			if col >= len(row) {
				continue
			}
			if date, ok := parseDate(row[col]); ok {
				return date, nil
			}
		}
		return time.Time{}, ErrNoDate
	}

	return time.Time{}, ErrNoTimeRow
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
