package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived sessions",
	Long:  `List all sessions stored in the local catalog by 'parse --archive'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveCatalogPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Println("No archived sessions yet. Run 'yuanbao-parser parse <file> --archive' first.")
			return nil
		}

		catalog, err := internal.OpenCatalog(path)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		defer func() { _ = catalog.Close() }()

		entries, err := catalog.List()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No archived sessions yet.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Archived sessions (%d)", len(entries))))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tMESSAGES\tARCHIVED")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				idStyle.Render(shortID(entry.ID)),
				entry.Title,
				entry.MessageCount,
				dateStyle.Render(entry.ArchivedAt))
		}
		return w.Flush()
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(listCmd)
}
