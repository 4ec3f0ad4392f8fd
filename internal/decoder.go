package internal

import (
	"html"
	"io"
	"mime/quotedprintable"
	"regexp"
	"strconv"
	"strings"
)

// Decoding patterns, compiled once and shared by all parse calls.
var (
	qpEscapePattern   = regexp.MustCompile(`=([0-9A-Fa-f]{2})`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// DecodeQuotedPrintable reverses quoted-printable encoding. The primary
// path decodes the whole input as one byte stream; if that fails, each
// =XX escape is substituted individually, leaving unparseable escapes
// untouched. The fallback can disagree with the byte-level path on
// multi-byte sequences split across escapes; it only runs on input the
// byte-level decoder rejects anyway.
func DecodeQuotedPrintable(text string) string {
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(text)))
	if err == nil {
		return string(decoded)
	}
	LogDebug("quoted-printable byte decode failed (%v), substituting escapes individually", err)

	return qpEscapePattern.ReplaceAllStringFunc(text, func(escape string) string {
		code, err := strconv.ParseUint(escape[1:], 16, 32)
		if err != nil {
			return escape
		}
		return string(rune(code))
	})
}

// DecodeEntities resolves named and numeric HTML entities to their
// literal characters.
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}

// StripTags removes every <...> tag, keeping enclosed text. Purely
// textual; nested and void elements get no special treatment.
func StripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// DecodeForSegmentation runs the decode passes that precede
// segmentation: quoted-printable, entities, then tag stripping. Line
// breaks are preserved because the segmenter splits on blank lines.
func DecodeForSegmentation(htmlContent string) string {
	decoded := DecodeQuotedPrintable(htmlContent)
	decoded = DecodeEntities(decoded)
	return StripTags(decoded)
}

// ExtractText produces the flattened single-line text view of an HTML
// fragment: full decode followed by whitespace collapsing.
func ExtractText(htmlContent string) string {
	flat := whitespacePattern.ReplaceAllString(DecodeForSegmentation(htmlContent), " ")
	return strings.TrimSpace(flat)
}
