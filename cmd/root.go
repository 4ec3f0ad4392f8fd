package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	catalogPath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yuanbao-parser",
	Short: "Extract and export chat sessions from MHTML snapshots",
	Long: `A CLI tool to extract chat conversations from MHTML snapshot files
saved from the Tencent Yuanbao web UI (and layout-compatible chat UIs).

The parser decodes the MIME envelope, reverses quoted-printable and
HTML-entity encoding, segments the text into attributed messages with
layered heuristics, and exports the result.

Quick Start:
  yuanbao-parser parse chat.mhtml                  # Export as Markdown
  yuanbao-parser parse chat.mhtml -f json          # Export as JSON
  yuanbao-parser parse chat.mhtml --archive        # Store in local catalog
  yuanbao-parser inspect chat.mhtml                # Show envelope metadata
  yuanbao-parser list                              # List archived sessions`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Custom catalog database path")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveCatalogPath returns the --catalog flag value or the default
// catalog location under the user's home directory.
func resolveCatalogPath() (string, error) {
	if catalogPath != "" {
		return catalogPath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".yuanbao-parser", "catalog.db"), nil
}
