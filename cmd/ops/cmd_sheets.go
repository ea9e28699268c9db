package main

import (
	"fmt"
	"path/filepath"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/sheets"
	"github.com/spf13/cobra"
)

var (
	sheetsDryRun bool
	sheetsOutDir string
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Tidy exported time sheets",
}

// sheetsRenameCmd renames "N.M.csv" sheet exports to "YYYY_WW.csv".
var sheetsRenameCmd = &cobra.Command{
	Use:   "rename <dir>",
	Short: "Rename sheet exports after the ISO week they cover",
	Long: `Rename exported sheets named like "12.3.csv" to "YYYY_WW.csv".

The week is taken from the date in the row that starts with "Time".
Files without such a row, or whose target name already exists, are
skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runSheetsRename,
}

// sheetsConvertCmd splits a workbook into one CSV per sheet.
var sheetsConvertCmd = &cobra.Command{
	Use:   "convert <xlsx>",
	Short: "Write every sheet of a workbook to {sheet}.csv",
	Long: `Write every sheet of an .xlsx workbook to "{sheet}.csv".

The CSVs land next to the workbook unless --out is given, ready for
"sheets rename".`,
	Args: cobra.ExactArgs(1),
	RunE: runSheetsConvert,
}

func init() {
	sheetsRenameCmd.Flags().BoolVar(&sheetsDryRun, "dry-run", false, "Report renames without touching files")
	sheetsConvertCmd.Flags().StringVar(&sheetsOutDir, "out", "", "Directory for the CSV files (default: the workbook's directory)")
	sheetsCmd.AddCommand(sheetsRenameCmd)
	sheetsCmd.AddCommand(sheetsConvertCmd)
}

func runSheetsConvert(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger("hi-time-sheets")

	out := sheetsOutDir
	if out == "" {
		out = filepath.Dir(args[0])
	}

	written, err := sheets.NewConverter(log).Convert(args[0], out)
	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
	}
	return err
}

func runSheetsRename(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger("hi-time-sheets")

	report, err := sheets.NewRenamer(sheetsDryRun, log).Rename(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	verb := "renamed"
	if sheetsDryRun {
		verb = "would rename"
	}
	for _, o := range report.Renamed {
		fmt.Fprintf(out, "%s %s -> %s\n", verb, o.From, o.To)
	}
	for _, o := range report.Skipped {
		fmt.Fprintf(out, "skipped %s: %s\n", o.From, o.Reason)
	}
	fmt.Fprintf(out, "%d %s, %d skipped\n", len(report.Renamed), verb, len(report.Skipped))
	return nil
}
