package export

import (
	"bytes"
	"testing"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	session := internal.CreateTestSession("测试对话")

	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.ChatSession
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if decoded.Title != session.Title {
		t.Errorf("title = %q, want %q", decoded.Title, session.Title)
	}
	if len(decoded.Messages) != len(session.Messages) {
		t.Fatalf("messages = %d, want %d", len(decoded.Messages), len(session.Messages))
	}
	if decoded.Messages[1].Thinking != session.Messages[1].Thinking {
		t.Errorf("thinking = %q, want %q", decoded.Messages[1].Thinking, session.Messages[1].Thinking)
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("Extension() = %v, want yaml", got)
	}
}
