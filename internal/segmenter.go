package internal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Segmentation patterns, compiled once and shared by all parse calls.
var (
	thinkingPattern  = regexp.MustCompile(`(?s)已深度思考.*?(\d+)秒`)
	blankLinePattern = regexp.MustCompile(`\n\s*\n`)
	ideographPattern = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
)

// userHintKeywords mark a paragraph as user-authored: first-person
// request phrasing typical of the prompt side of a conversation.
var userHintKeywords = []string{"用户", "请", "帮我", "我需要"}

// markerRoles maps explicit turn markers rendered by the chat UI to the
// role they introduce. Extending the lexicon means adding rows here,
// not touching the scan loop.
var markerRoles = []struct {
	Phrase string
	Role   Sender
}{
	{"用户提问", SenderUser},
	{"用户问题", SenderUser},
	{"用户需求", SenderUser},
	{"用户确认", SenderUser},
	{"AI回应", SenderAssistant},
	{"AI分析", SenderAssistant},
	{"AI深度分析", SenderAssistant},
}

// markupFingerprints disqualify a candidate as leaked markup rather
// than conversation text. Matched against the lowercased candidate.
var markupFingerprints = []string{
	"stylesheet", "javascript", "css-", "class=", "href=", "svg", "xml",
}

// candidate is a raw message span produced by a segmentation strategy,
// before the shared validity filter and deduplication run.
type candidate struct {
	Sender   Sender
	Content  string
	Thinking string
}

// strategy extracts raw candidate messages from decoded snapshot text.
// Implementations apply only their own splitting heuristic; filtering
// and deduplication happen uniformly in the merge stage.
type strategy interface {
	Name() string
	Extract(text string) []candidate
}

// strategies run in fixed order; earlier output wins deduplication.
var strategies = []strategy{
	paragraphStrategy{},
	markerStrategy{},
}

// paragraphStrategy splits on blank lines and attributes each paragraph
// by keyword heuristics. If the snapshot carries an extended-thinking
// banner, a reasoning summary is attached to assistant candidates.
type paragraphStrategy struct{}

func (paragraphStrategy) Name() string { return "paragraph" }

func (paragraphStrategy) Extract(text string) []candidate {
	var thinking string
	if m := thinkingPattern.FindStringSubmatch(text); m != nil {
		thinking = fmt.Sprintf("深度思考（用时%s秒）", m[1])
	}

	var candidates []candidate
	for _, paragraph := range blankLinePattern.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if utf8.RuneCountInString(paragraph) < 10 {
			continue
		}

		sender := SenderAssistant
		for _, keyword := range userHintKeywords {
			if strings.Contains(paragraph, keyword) {
				sender = SenderUser
				break
			}
		}

		c := candidate{Sender: sender, Content: paragraph}
		if sender == SenderAssistant {
			c.Thinking = thinking
		}
		candidates = append(candidates, c)
	}
	return candidates
}

// markerStrategy scans line by line for explicit turn markers. A line
// matching a marker for a different role flushes the accumulated buffer
// as a message of the previous role and starts a new one. There is no
// backtracking: a misread marker permanently switches state.
type markerStrategy struct{}

func (markerStrategy) Name() string { return "marker" }

func (markerStrategy) Extract(text string) []candidate {
	var candidates []candidate
	var buffer []string
	var current Sender

	flush := func() {
		if current == "" || len(buffer) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		if content != "" {
			candidates = append(candidates, candidate{Sender: current, Content: content})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		next := markerRole(line)
		if next != "" && next != current {
			flush()
			current = next
			buffer = []string{line}
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	return candidates
}

// markerRole returns the role a marker line introduces, or "" when the
// line matches no marker.
func markerRole(line string) Sender {
	for _, marker := range markerRoles {
		if strings.Contains(line, marker.Phrase) {
			return marker.Role
		}
	}
	return ""
}

// isValidMessage reports whether a candidate span looks like actual
// conversation text: bounded length, at least one ideograph, and no
// raw-markup fingerprints.
func isValidMessage(text string) bool {
	length := utf8.RuneCountInString(text)
	if length < 5 || length > 10000 {
		return false
	}
	if !ideographPattern.MatchString(text) {
		return false
	}
	lower := strings.ToLower(text)
	for _, fingerprint := range markupFingerprints {
		if strings.Contains(lower, fingerprint) {
			return false
		}
	}
	return true
}

// SegmentMessages runs every strategy over the decoded text in order
// and merges their raw candidates into the final message list.
func SegmentMessages(text string) []ChatMessage {
	var candidates []candidate
	for _, s := range strategies {
		candidates = append(candidates, s.Extract(text)...)
	}
	return mergeCandidates(candidates)
}

// mergeCandidates applies the shared validity filter, then drops later
// candidates whose dedup key was already seen, preserving the relative
// order of kept messages.
func mergeCandidates(candidates []candidate) []ChatMessage {
	var messages []ChatMessage
	seen := make(map[string]bool)

	for _, c := range candidates {
		if !isValidMessage(c.Content) {
			continue
		}
		key := DedupKey(c.Content)
		if seen[key] {
			continue
		}
		seen[key] = true
		messages = append(messages, ChatMessage{
			Sender:   c.Sender,
			Content:  c.Content,
			Thinking: c.Thinking,
		})
	}

	return messages
}

// StrategyCount reports how many raw candidates one strategy produced,
// before filtering and deduplication.
type StrategyCount struct {
	Name       string
	Candidates int
}

// StrategyCandidates returns per-strategy raw candidate counts for
// diagnostics.
func StrategyCandidates(text string) []StrategyCount {
	counts := make([]StrategyCount, 0, len(strategies))
	for _, s := range strategies {
		counts = append(counts, StrategyCount{Name: s.Name(), Candidates: len(s.Extract(text))})
	}
	return counts
}
