package internal

import (
	"os"
)

// ReadSnapshotFile reads a snapshot fully into memory. A missing file
// is reported as NotFoundError before any parsing happens.
func ReadSnapshotFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	return os.ReadFile(path)
}

// ParseFile parses an MHTML snapshot file into a ChatSession.
func ParseFile(path string) (*ChatSession, error) {
	raw, err := ReadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(raw), nil
}

// ParseBytes runs the full pipeline over raw snapshot bytes: envelope,
// decode, segment, assemble. It always yields a session; an envelope
// without usable conversation text yields one with zero messages.
func ParseBytes(raw []byte) *ChatSession {
	env := ReadEnvelope(raw)
	text := DecodeForSegmentation(env.HTMLBody)
	messages := SegmentMessages(text)

	LogDebug("parsed session %q: %d message(s)", env.Title, len(messages))

	return &ChatSession{
		Title:       env.Title,
		URL:         env.URL,
		CreatedTime: env.CreatedTime,
		Messages:    messages,
	}
}
