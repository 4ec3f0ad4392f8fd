package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot.mhtml>",
	Short: "Inspect a snapshot's envelope and segmentation",
	Long: `Inspect an MHTML snapshot without exporting it.

Shows the envelope metadata (title, source URL, creation time), the raw
candidate counts each segmentation strategy produced, and the sender
breakdown of the messages that survived filtering and deduplication.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := internal.ReadSnapshotFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		env := internal.ReadEnvelope(raw)
		text := internal.DecodeForSegmentation(env.HTMLBody)
		counts := internal.StrategyCandidates(text)
		messages := internal.SegmentMessages(text)

		senders := map[internal.Sender]int{}
		for _, msg := range messages {
			senders[msg.Sender]++
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Title:\t%s\n", env.Title)
		fmt.Fprintf(w, "URL:\t%s\n", env.URL)
		fmt.Fprintf(w, "Created:\t%s\n", env.CreatedTime)
		fmt.Fprintf(w, "HTML body:\t%d byte(s)\n", len(env.HTMLBody))
		fmt.Fprintln(w)
		for _, count := range counts {
			fmt.Fprintf(w, "Strategy %s:\t%d candidate(s)\n", count.Name, count.Candidates)
		}
		fmt.Fprintf(w, "Kept messages:\t%d\n", len(messages))
		fmt.Fprintf(w, "  user:\t%d\n", senders[internal.SenderUser])
		fmt.Fprintf(w, "  assistant:\t%d\n", senders[internal.SenderAssistant])
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
