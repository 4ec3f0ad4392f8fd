package internal

import (
	"strings"
	"testing"
)

func TestIsValidMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "valid chinese message",
			input: "这是一个有效的中文消息，内容足够长",
			want:  true,
		},
		{
			name:  "too short",
			input: "短",
			want:  false,
		},
		{
			name:  "no ideographs",
			input: "This is an English only message of decent length",
			want:  false,
		},
		{
			name:  "markup fingerprint class attribute",
			input: "这是包含CSS的消息 class='test'",
			want:  false,
		},
		{
			name:  "markup fingerprint stylesheet",
			input: "这段文字提到了 Stylesheet 关键字",
			want:  false,
		},
		{
			name:  "too long",
			input: strings.Repeat("很长的消息", 2001),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidMessage(tt.input); got != tt.want {
				t.Errorf("isValidMessage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMergeCandidates_Dedup(t *testing.T) {
	first := "第一条消息内容，足够长也有汉字"
	second := "第二条消息内容，足够长也有汉字"
	fourth := "第四条消息内容，足够长也有汉字"

	candidates := []candidate{
		{Sender: SenderUser, Content: first},
		{Sender: SenderAssistant, Content: second},
		{Sender: SenderUser, Content: first}, // duplicate of the first
		{Sender: SenderUser, Content: fourth},
	}

	got := mergeCandidates(candidates)
	if len(got) != 3 {
		t.Fatalf("mergeCandidates() returned %d messages, want 3", len(got))
	}
	if got[0].Content != first || got[1].Content != second || got[2].Content != fourth {
		t.Errorf("mergeCandidates() did not preserve relative order: %+v", got)
	}
}

func TestMergeCandidates_FiltersInvalid(t *testing.T) {
	candidates := []candidate{
		{Sender: SenderUser, Content: "短"},
		{Sender: SenderUser, Content: "English only, no ideographs at all"},
		{Sender: SenderAssistant, Content: "合法的消息内容在这里"},
	}

	got := mergeCandidates(candidates)
	if len(got) != 1 {
		t.Fatalf("mergeCandidates() returned %d messages, want 1", len(got))
	}
	if got[0].Sender != SenderAssistant {
		t.Errorf("kept message sender = %s, want assistant", got[0].Sender)
	}
}

func TestParagraphStrategy(t *testing.T) {
	text := "已深度思考（用时12秒）\n\n" +
		"请帮我写一个排序算法，最好带注释\n\n" +
		"好的，下面是一个带注释的快速排序实现\n\n" +
		"太短\n"

	got := paragraphStrategy{}.Extract(text)
	if len(got) != 3 {
		t.Fatalf("Extract() returned %d candidates, want 3", len(got))
	}

	// The banner paragraph itself contains no user keyword and counts
	// as an assistant candidate; filtering it out happens later in the
	// merge stage.
	if got[1].Sender != SenderUser {
		t.Errorf("user paragraph classified as %s", got[1].Sender)
	}
	if got[1].Thinking != "" {
		t.Errorf("user candidate should carry no thinking summary, got %q", got[1].Thinking)
	}
	if got[2].Sender != SenderAssistant {
		t.Errorf("assistant paragraph classified as %s", got[2].Sender)
	}
	if got[2].Thinking != "深度思考（用时12秒）" {
		t.Errorf("assistant thinking = %q, want %q", got[2].Thinking, "深度思考（用时12秒）")
	}
}

func TestParagraphStrategy_NoThinkingBanner(t *testing.T) {
	got := paragraphStrategy{}.Extract("好的，下面是一个带注释的快速排序实现")
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d candidates, want 1", len(got))
	}
	if got[0].Thinking != "" {
		t.Errorf("thinking = %q, want empty without a banner", got[0].Thinking)
	}
}

func TestMarkerStrategy(t *testing.T) {
	text := "用户提问：代码有什么问题\n" +
		"补充一下上下文信息\n" +
		"AI回应：主要问题有三个\n" +
		"第一个是空指针异常\n"

	got := markerStrategy{}.Extract(text)
	if len(got) != 2 {
		t.Fatalf("Extract() returned %d candidates, want 2", len(got))
	}

	if got[0].Sender != SenderUser {
		t.Errorf("first candidate sender = %s, want user", got[0].Sender)
	}
	if !strings.Contains(got[0].Content, "补充一下上下文信息") {
		t.Errorf("non-marker line not appended to buffer: %q", got[0].Content)
	}
	if got[1].Sender != SenderAssistant {
		t.Errorf("second candidate sender = %s, want assistant", got[1].Sender)
	}
	if !strings.Contains(got[1].Content, "第一个是空指针异常") {
		t.Errorf("trailing buffer not flushed: %q", got[1].Content)
	}
}

func TestMarkerStrategy_NoMarkers(t *testing.T) {
	got := markerStrategy{}.Extract("没有任何标记的普通文本\n第二行内容\n")
	if len(got) != 0 {
		t.Errorf("Extract() returned %d candidates without markers, want 0", len(got))
	}
}

func TestMarkerStrategy_SameRoleMarkerDoesNotFlush(t *testing.T) {
	text := "用户提问：第一个问题\n用户确认：对，就是这个意思\n"
	got := markerStrategy{}.Extract(text)
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d candidates, want 1 (same-role marker keeps buffer)", len(got))
	}
	if !strings.Contains(got[0].Content, "用户确认") {
		t.Errorf("same-role marker line should stay in the buffer: %q", got[0].Content)
	}
}

func TestSegmentMessages(t *testing.T) {
	text := "用户提问：请帮我看看这段代码\n\n" +
		"AI回应：这段代码整体结构清晰，但有两个问题需要修复\n"

	got := SegmentMessages(text)
	if len(got) == 0 {
		t.Fatal("SegmentMessages() returned no messages")
	}
	for _, msg := range got {
		if msg.Content == "" {
			t.Error("message with empty content survived the merge")
		}
		if msg.Sender != SenderUser && msg.Sender != SenderAssistant {
			t.Errorf("unexpected sender %q", msg.Sender)
		}
	}
}

func TestStrategyCandidates(t *testing.T) {
	counts := StrategyCandidates("用户提问：请帮我看看这段代码\n\nAI回应：没有问题\n")
	if len(counts) != 2 {
		t.Fatalf("StrategyCandidates() returned %d entries, want 2", len(counts))
	}
	if counts[0].Name != "paragraph" || counts[1].Name != "marker" {
		t.Errorf("unexpected strategy order: %+v", counts)
	}
}
