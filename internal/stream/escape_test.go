package stream

import "testing"

func TestNormalizeEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no escapes", "plain lesson text", "plain lesson text"},
		{"newline", `line one\nline two`, "line one\nline two"},
		{"tab", `col\tcol`, "col\tcol"},
		{"carriage return", `a\rb`, "a\rb"},
		{"double quote", `He said \"hi\"`, `He said "hi"`},
		{"single quote", `it\'s`, "it's"},
		{"backslash pair", `C:\\Users`, `C:\Users`},
		{"backslash pair before n", `C:\\names`, `C:\names`},
		{"trailing backslash", `dangling\`, `dangling\`},
		{"unknown escape", `\x41`, `\x41`},
		{"mixed", `a\n\tb\\c\"d`, "a\n\tb\\c\"d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeEscapes(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeEscapes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEscapesIdempotentOnNormalizedText(t *testing.T) {
	inputs := []string{
		"already normal text",
		"with\nreal\nnewlines",
		"tabs\tand \"quotes\"",
	}
	for _, in := range inputs {
		once := NormalizeEscapes(in)
		if once != in {
			t.Errorf("normalizing escape-free input changed it: %q -> %q", in, once)
		}
		twice := NormalizeEscapes(once)
		if twice != once {
			t.Errorf("second normalization changed output: %q -> %q", once, twice)
		}
	}
}
