package main

import (
	"fmt"
	"os"

	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var configPath string

// rootCmd is the hi-time operations CLI.
var rootCmd = &cobra.Command{
	Use:   "hi-time-ops",
	Short: "Operational tasks for hi-time",
	Long: `Operational tasks for a hi-time deployment.

Available commands:
  backup - Export the server database to JSON files
  sheets - Convert and rename exported time sheets`,
	SilenceUsage: true,
	Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a .json, .yaml or .toml config file")

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(sheetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
