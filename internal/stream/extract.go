package stream

import (
	"encoding/json"
	"regexp"
)

// ExtractionKind tags how (or whether) lesson text was recovered from the
// accumulated stream.
type ExtractionKind int

const (
	// ExtractionFailed means no content could be recovered at this increment.
	ExtractionFailed ExtractionKind = iota

	// ExtractionParsed means the accumulated text was a complete, valid JSON
	// document with a string content field.
	ExtractionParsed

	// ExtractionPartial means content was recovered by pattern matching from
	// a syntactically incomplete document.
	ExtractionPartial
)

// Extraction is the result of one attempt to pull lesson text out of the
// (possibly incomplete) accumulated stream.
type Extraction struct {
	Kind    ExtractionKind
	Content string
}

// contentClosedRe matches a "content" key whose string value closed its
// quotes, even when trailing JSON (closing brace, sibling field) is still
// missing. An escaped quote inside the value does not terminate the match.
var contentClosedRe = regexp.MustCompile(`"content"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// contentOpenRe matches a "content" key whose closing quote has not arrived
// yet, capturing everything up to the end of input. A trailing lone backslash
// (an escape sequence split across chunks) makes the match fail, which is the
// desired outcome: the caller keeps the previous extraction until the rest of
// the sequence arrives.
var contentOpenRe = regexp.MustCompile(`"content"\s*:\s*"((?:[^"\\]|\\.)*)$`)

// ExtractContent derives the best available lesson text from raw, which may
// be invalid or incomplete JSON. It tries, in order: a full document parse, a
// closed-string pattern match, and an open-ended pattern match. Returned
// content is already escape-normalized.
func ExtractContent(raw string) Extraction {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err == nil {
		if c, ok := doc["content"].(string); ok {
			return Extraction{Kind: ExtractionParsed, Content: NormalizeEscapes(c)}
		}
	}

	if m := contentClosedRe.FindStringSubmatch(raw); m != nil {
		// Re-decode the captured group so wire escapes (\n, \uXXXX) become
		// real characters. Fall back to the raw capture if decoding fails.
		var decoded string
		if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &decoded); err == nil {
			return Extraction{Kind: ExtractionPartial, Content: NormalizeEscapes(decoded)}
		}
		return Extraction{Kind: ExtractionPartial, Content: NormalizeEscapes(m[1])}
	}

	if m := contentOpenRe.FindStringSubmatch(raw); m != nil {
		return Extraction{Kind: ExtractionPartial, Content: NormalizeEscapes(m[1])}
	}

	return Extraction{Kind: ExtractionFailed}
}
