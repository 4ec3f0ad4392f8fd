package internal

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is a single attributed turn recovered from a snapshot.
// Messages are constructed once during parsing and never mutated.
type ChatMessage struct {
	Sender    Sender `json:"sender" yaml:"sender"`
	Content   string `json:"content" yaml:"content"`
	Thinking  string `json:"thinking" yaml:"thinking,omitempty"`
	Timestamp string `json:"timestamp" yaml:"timestamp,omitempty"`
}

// ChatSession is a reconstructed conversation. Messages keep the order
// in which the segmenter discovered them.
type ChatSession struct {
	Title       string        `json:"title" yaml:"title"`
	URL         string        `json:"url" yaml:"url"`
	CreatedTime string        `json:"created_time" yaml:"created_time"`
	Messages    []ChatMessage `json:"messages" yaml:"messages"`
}

// dedupKeyLength is the number of leading runes used as an approximate
// message identity during deduplication.
const dedupKeyLength = 100

// DedupKey returns the leading-content key used to suppress duplicate
// messages emitted by overlapping segmentation strategies.
func DedupKey(content string) string {
	runes := []rune(content)
	if len(runes) > dedupKeyLength {
		runes = runes[:dedupKeyLength]
	}
	return string(runes)
}

// ContentHash returns a stable hex identifier derived from the session's
// message content. Used as the catalog primary key so re-archiving the
// same snapshot updates rather than duplicates the entry.
func (s *ChatSession) ContentHash() string {
	h := sha256.New()
	for _, msg := range s.Messages {
		h.Write([]byte(msg.Sender))
		h.Write([]byte(msg.Content))
		h.Write([]byte(msg.Timestamp))
	}
	return hex.EncodeToString(h.Sum(nil))
}
