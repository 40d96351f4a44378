package stream

import "strings"

// NormalizeEscapes converts literal two-character escape sequences embedded in
// extracted text into their real characters: \n, \r, \t, \", \' and \\.
// The conversion runs as a single left-to-right pass, so a backslash pair is
// consumed whole and its second backslash can never be misread as the start
// of another sequence. Unknown escapes and trailing backslashes pass through
// unchanged. Pure function; always returns a string.
func NormalizeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\'':
			b.WriteByte('\'')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
