package cmd

import (
	"fmt"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal/export"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	parseFormat  string
	parseOutput  string
	parseArchive bool
)

var (
	// Styles
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	summaryCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <snapshot.mhtml>",
	Short: "Parse a snapshot and export the conversation",
	Long: `Parse an MHTML chat snapshot and export the reconstructed
conversation to Markdown, JSON, JSONL, or YAML.

Without --output, the export is written next to the working directory
under a timestamped name. With --archive, the session is also stored in
the local catalog (see 'yuanbao-parser list').`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		exporter, err := export.NewExporter(parseFormat)
		if err != nil {
			return err
		}

		session, err := internal.ParseFile(input)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", input, err)
		}

		dest := parseOutput
		if dest == "" {
			dest = export.DefaultFilename(exporter)
		}
		if err := export.WriteFile(exporter, session, dest); err != nil {
			return err
		}

		if parseArchive {
			id, err := archiveSession(session)
			if err != nil {
				return err
			}
			internal.LogInfo("archived session %s", id)
		}

		fmt.Println(summaryTitleStyle.Render(session.Title))
		if session.URL != "" {
			fmt.Printf("%s %s\n", summaryLabelStyle.Render("来源:"), session.URL)
		}
		if session.CreatedTime != "" {
			fmt.Printf("%s %s\n", summaryLabelStyle.Render("创建时间:"), session.CreatedTime)
		}
		fmt.Printf("%s %s\n", summaryLabelStyle.Render("消息数量:"), summaryCountStyle.Render(fmt.Sprintf("%d", len(session.Messages))))
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ 已导出到 %s", dest)))

		return nil
	},
}

// archiveSession stores a parsed session in the catalog.
func archiveSession(session *internal.ChatSession) (string, error) {
	path, err := resolveCatalogPath()
	if err != nil {
		return "", err
	}

	catalog, err := internal.OpenCatalog(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = catalog.Close() }()

	return catalog.Save(session)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "md", "Export format (md, json, jsonl, yaml)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output file path (default: timestamped name)")
	parseCmd.Flags().BoolVar(&parseArchive, "archive", false, "Store the parsed session in the local catalog")
}
