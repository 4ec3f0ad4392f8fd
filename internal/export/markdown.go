package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export renders a session as a Markdown document: title heading,
// metadata block, then one numbered section per message.
func (e *MarkdownExporter) Export(session *internal.ChatSession, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n\n", session.Title)
	fmt.Fprintf(bw, "**来源**: %s\n", session.URL)
	fmt.Fprintf(bw, "**创建时间**: %s\n", session.CreatedTime)
	fmt.Fprintf(bw, "**消息数量**: %d\n\n", len(session.Messages))
	fmt.Fprintf(bw, "---\n\n")

	for i, msg := range session.Messages {
		fmt.Fprintf(bw, "## %d. %s\n\n", i+1, senderLabel(msg.Sender))
		if msg.Thinking != "" {
			fmt.Fprintf(bw, "*%s*\n\n", msg.Thinking)
		}
		fmt.Fprintf(bw, "%s\n\n---\n\n", msg.Content)
	}

	return bw.Flush()
}

func senderLabel(sender internal.Sender) string {
	if sender == internal.SenderUser {
		return "🧑 用户"
	}
	return "🤖 AI助手"
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
