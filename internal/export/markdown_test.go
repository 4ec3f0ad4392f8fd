package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KoSukeWork/YuanBao-mhtml-parser/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.ChatSession
		want    []string
	}{
		{
			name:    "full session",
			session: internal.CreateTestSession("测试对话"),
			want: []string{
				"# 测试对话",
				"**来源**: https://yuanbao.tencent.com/chat/test",
				"**创建时间**: Thu, 26 Sep 2025 10:00:00 +0800",
				"**消息数量**: 2",
				"## 1. 🧑 用户",
				"请帮我分析这段代码的问题",
				"## 2. 🤖 AI助手",
				"*深度思考（用时12秒）*",
				"好的，这段代码的主要问题如下",
				"---",
			},
		},
		{
			name: "message without thinking has no italic line",
			session: internal.CreateTestSessionWithMessages("无思考", []internal.ChatMessage{
				{Sender: internal.SenderAssistant, Content: "直接回答"},
			}),
			want: []string{
				"# 无思考",
				"## 1. 🤖 AI助手",
				"直接回答",
			},
		},
		{
			name:    "empty session",
			session: internal.CreateTestSessionWithMessages("空会话", nil),
			want: []string{
				"# 空会话",
				"**消息数量**: 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}

			if err := exporter.Export(tt.session, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			output := buf.String()
			for _, wantStr := range tt.want {
				if !strings.Contains(output, wantStr) {
					t.Errorf("Output should contain %q, got:\n%s", wantStr, output)
				}
			}
		})
	}
}

func TestMarkdownExporter_NumbersSequentially(t *testing.T) {
	session := internal.CreateTestSessionWithMessages("编号", []internal.ChatMessage{
		{Sender: internal.SenderUser, Content: "第一条"},
		{Sender: internal.SenderAssistant, Content: "第二条"},
		{Sender: internal.SenderUser, Content: "第三条"},
	})

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	for _, heading := range []string{"## 1. ", "## 2. ", "## 3. "} {
		if !strings.Contains(output, heading) {
			t.Errorf("Output should contain %q", heading)
		}
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("Extension() = %v, want md", got)
	}
}
