package internal

import (
	"bufio"
	"bytes"
	"io"
	"mime"
	"net/mail"
	"net/textproto"
	"strings"
)

// FallbackTitle is used when a snapshot carries no Subject header.
const FallbackTitle = "未知对话"

// Envelope holds the session metadata and raw HTML body isolated from
// the MIME container. The body is returned exactly as stored; transfer
// decoding is the decoder's job.
type Envelope struct {
	Title       string
	URL         string
	CreatedTime string
	HTMLBody    string
}

// ReadEnvelope parses the MIME container of a snapshot. Malformed
// envelopes degrade gracefully: missing headers yield placeholder
// metadata, an unreadable container is treated as bare HTML, and a
// multipart document without an HTML part yields an empty body.
func ReadEnvelope(raw []byte) *Envelope {
	env := &Envelope{Title: FallbackTitle}

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		LogWarn("unreadable envelope (%v), treating whole document as HTML", err)
		env.HTMLBody = string(raw)
		return env
	}

	if subject := msg.Header.Get("Subject"); subject != "" {
		env.Title = decodeSubject(subject)
	}
	env.URL = msg.Header.Get("Snapshot-Content-Location")
	env.CreatedTime = msg.Header.Get("Date")

	body, err := io.ReadAll(msg.Body)
	if err != nil {
		LogWarn("failed to read envelope body: %v", err)
		return env
	}

	env.HTMLBody = extractHTMLPart(msg.Header.Get("Content-Type"), string(body))
	return env
}

// decodeSubject decodes an RFC 2047 encoded-word Subject, falling back
// to raw quoted-printable substitution for snapshots that embed escapes
// without the encoded-word wrapper.
func decodeSubject(subject string) string {
	dec := new(mime.WordDecoder)
	if decoded, err := dec.DecodeHeader(subject); err == nil && decoded != subject {
		return decoded
	}
	return DecodeQuotedPrintable(subject)
}

// extractHTMLPart selects the HTML payload from the envelope body. For
// multipart documents the first text/html part wins; single-part
// documents use the whole payload. Part payloads are kept raw so the
// decoder sees the stored quoted-printable text.
func extractHTMLPart(contentType, body string) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return body
	}

	boundary := params["boundary"]
	if boundary == "" {
		LogWarn("multipart document without boundary parameter, treating body as HTML")
		return body
	}

	for _, part := range splitParts(body, boundary) {
		header, payload := readPartHeader(part)
		partType, _, _ := mime.ParseMediaType(header.Get("Content-Type"))
		if partType == "text/html" {
			return payload
		}
	}

	LogWarn("no text/html part found in multipart document")
	return ""
}

// splitParts cuts a multipart body at its boundary delimiters. The
// chunk before the first delimiter is the preamble; a chunk starting
// with "--" is the closing delimiter's remainder.
func splitParts(body, boundary string) []string {
	chunks := strings.Split(body, "--"+boundary)
	if len(chunks) < 2 {
		return nil
	}

	var parts []string
	for _, chunk := range chunks[1:] {
		if strings.HasPrefix(chunk, "--") || strings.TrimSpace(chunk) == "" {
			continue
		}
		parts = append(parts, chunk)
	}
	return parts
}

// readPartHeader splits one multipart chunk into its MIME header and
// payload. Chunks without a parseable header block are returned whole
// as payload under an empty header.
func readPartHeader(part string) (textproto.MIMEHeader, string) {
	trimmed := strings.TrimLeft(part, "\r\n")
	reader := textproto.NewReader(bufio.NewReader(strings.NewReader(trimmed)))

	header, err := reader.ReadMIMEHeader()
	if err != nil {
		return textproto.MIMEHeader{}, trimmed
	}

	payload, err := io.ReadAll(reader.R)
	if err != nil {
		return header, ""
	}
	return header, string(payload)
}
