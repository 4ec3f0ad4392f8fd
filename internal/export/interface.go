package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
)

// Exporter defines the interface for all export formats. Exporters
// never mutate the session they render.
type Exporter interface {
	Export(session *internal.ChatSession, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: md, json, jsonl, yaml)", format)
	}
}

// DefaultFilename returns a timestamped output name so repeated exports
// without an explicit destination never collide.
func DefaultFilename(e Exporter) string {
	return fmt.Sprintf("chat_export_%s.%s", time.Now().Format("20060102_150405"), e.Extension())
}

// WriteFile exports a session to the given path. I/O failures propagate
// as ExportError; nothing is silently truncated.
func WriteFile(e Exporter, session *internal.ChatSession, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: e.Extension(), Path: path, Err: err}
	}

	if err := e.Export(session, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: e.Extension(), Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return &internal.ExportError{Format: e.Extension(), Path: path, Err: err}
	}
	return nil
}
