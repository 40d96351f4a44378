package stream

import "testing"

func TestExtractContentFullParse(t *testing.T) {
	ext := ExtractContent(`{"title":"T","content":"C"}`)
	if ext.Kind != ExtractionParsed {
		t.Fatalf("expected ExtractionParsed, got %v", ext.Kind)
	}
	if ext.Content != "C" {
		t.Errorf("expected content %q, got %q", "C", ext.Content)
	}
}

func TestExtractContentFullParseTakesPrecedence(t *testing.T) {
	// The partial-match path would also succeed here; the full parse must win.
	ext := ExtractContent(`{"title":"T","content":"C","estimated_read_time_min":5}`)
	if ext.Kind != ExtractionParsed {
		t.Fatalf("expected ExtractionParsed, got %v", ext.Kind)
	}
	if ext.Content != "C" {
		t.Errorf("expected content %q, got %q", "C", ext.Content)
	}
}

func TestExtractContentClosedString(t *testing.T) {
	// Content closed its quotes but the document is still missing its brace.
	ext := ExtractContent(`{"title":"T","content":"Closed value","estimated`)
	if ext.Kind != ExtractionPartial {
		t.Fatalf("expected ExtractionPartial, got %v", ext.Kind)
	}
	if ext.Content != "Closed value" {
		t.Errorf("expected %q, got %q", "Closed value", ext.Content)
	}
}

func TestExtractContentOpenEnded(t *testing.T) {
	ext := ExtractContent(`{"title":"T","content":"Hello wor`)
	if ext.Kind != ExtractionPartial {
		t.Fatalf("expected ExtractionPartial, got %v", ext.Kind)
	}
	if ext.Content != "Hello wor" {
		t.Errorf("expected %q, got %q", "Hello wor", ext.Content)
	}
}

func TestExtractContentOpenEndedWithEscapedQuotes(t *testing.T) {
	ext := ExtractContent(`{"title":"T","content":"He said \"hi\" to m`)
	if ext.Kind != ExtractionPartial {
		t.Fatalf("expected ExtractionPartial, got %v", ext.Kind)
	}
	if ext.Content != `He said "hi" to m` {
		t.Errorf("expected %q, got %q", `He said "hi" to m`, ext.Content)
	}
}

func TestExtractContentWireEscapes(t *testing.T) {
	// Wire-escaped newlines inside an in-progress value become real ones.
	ext := ExtractContent(`{"content":"first\nsecond`)
	if ext.Content != "first\nsecond" {
		t.Errorf("expected normalized newline, got %q", ext.Content)
	}
}

func TestExtractContentFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no content key yet", `{"title":"T","cont`},
		{"opening quote missing", `{"title":"T","content":`},
		{"mid escape sequence", `{"title":"T","content":"partial\`},
		{"content is not a string", `{"title":"T","content":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := ExtractContent(tt.input)
			if ext.Kind != ExtractionFailed {
				t.Errorf("expected ExtractionFailed for %q, got kind %v content %q",
					tt.input, ext.Kind, ext.Content)
			}
		})
	}
}

func TestExtractContentClosedStringDecodesEscapes(t *testing.T) {
	ext := ExtractContent(`{"title":"T","content":"a\nb","tr`)
	if ext.Kind != ExtractionPartial {
		t.Fatalf("expected ExtractionPartial, got %v", ext.Kind)
	}
	if ext.Content != "a\nb" {
		t.Errorf("expected decoded newline, got %q", ext.Content)
	}
}
