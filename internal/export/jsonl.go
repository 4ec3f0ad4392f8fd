package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
)

// JSONLExporter exports sessions in JSONL format: a session header line
// followed by one message per line.
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.ChatSession, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	header := map[string]interface{}{
		"title":         session.Title,
		"url":           session.URL,
		"created_time":  session.CreatedTime,
		"message_count": len(session.Messages),
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("failed to encode session header: %w", err)
	}

	for _, msg := range session.Messages {
		if err := enc.Encode(msg); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
