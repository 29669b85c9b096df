// Package scanner classifies the physical lines of a FreeDesktop entry file.
//
// The scanner is the stateless half of the parsing pipeline: it splits raw
// input into classified lines (blank, comment, section header, attribute),
// one line at a time with no lookahead, and leaves all structural rules to
// the builder in pkgs/entry. Malformed lines are reported as BadSectionHeader
// or BadAttribute lines rather than errors, so the caller decides how to
// surface them.
package scanner

import "strings"

// Scanner produces classified lines from raw input in a single pass.
// It is not safe for concurrent use; create one Scanner per traversal.
type Scanner struct {
	input string
	pos   int // byte offset of the next unread line
	line  int // number of the last line handed out
}

// New creates a Scanner over the complete input text.
func New(input []byte) *Scanner {
	return &Scanner{input: string(input)}
}

// NewString creates a Scanner over a string, avoiding a copy.
func NewString(input string) *Scanner {
	return &Scanner{input: input}
}

// Next returns the next classified line. After the last physical line it
// returns a Line with Kind EOF, and keeps doing so on further calls. A final
// line without a terminating newline is still classified.
func (s *Scanner) Next() Line {
	if s.pos >= len(s.input) {
		return Line{Kind: EOF, Num: s.line + 1}
	}
	raw := s.readLine()
	s.line++
	return classify(raw, s.line)
}

// Lines classifies the rest of the input into a slice, EOF excluded.
func (s *Scanner) Lines() []Line {
	var lines []Line
	for {
		ln := s.Next()
		if ln.Kind == EOF {
			return lines
		}
		lines = append(lines, ln)
	}
}

// readLine consumes up to and including the next newline and returns the
// line without its terminator.
func (s *Scanner) readLine() string {
	start := s.pos
	if end := strings.IndexByte(s.input[start:], '\n'); end >= 0 {
		s.pos = start + end + 1
		return s.input[start : start+end]
	}
	s.pos = len(s.input)
	return s.input[start:]
}

// classify applies the per-line rules, in order, after trimming surrounding
// whitespace: blank, comment, section header, then attribute.
func classify(raw string, num int) Line {
	ln := Line{Num: num, Raw: raw}
	text := strings.TrimSpace(raw)
	switch {
	case text == "":
		ln.Kind = Blank
	case text[0] == '#':
		ln.Kind = Comment
	case text[0] == '[':
		name, ok := sectionName(text)
		if !ok {
			ln.Kind = BadSectionHeader
			break
		}
		ln.Kind = SectionHeader
		ln.Name = name
	default:
		key, value, ok := splitAttr(text)
		if !ok {
			ln.Kind = BadAttribute
			break
		}
		ln.Kind = Attribute
		ln.Key = key
		ln.Value = value
	}
	return ln
}

// sectionName extracts the name from a "[...]" header line. The closing
// bracket must be the last character of the line, and the trimmed name must
// be non-empty and free of ']' (bracket nesting is not supported).
func sectionName(text string) (string, bool) {
	if text[len(text)-1] != ']' {
		return "", false
	}
	name := strings.TrimSpace(text[1 : len(text)-1])
	if name == "" || strings.ContainsRune(name, ']') {
		return "", false
	}
	return name, true
}

// splitAttr splits a key=value line on the first '=', so the value may
// itself contain '=' characters (shell assignments in Exec= lines). The key
// is trimmed and must be non-empty. At most one leading space is stripped
// from the value, making "Key= value" and "Key=value" equivalent; anything
// beyond that single space is part of the value.
func splitAttr(text string) (key, value string, ok bool) {
	eq := strings.IndexByte(text, '=')
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(text[:eq])
	if key == "" {
		return "", "", false
	}
	value = strings.TrimPrefix(text[eq+1:], " ")
	return key, value, true
}
