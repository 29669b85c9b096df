package entry

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes parse failures.
type ErrorKind int

const (
	ErrBadSectionHeader       ErrorKind = iota // '[' line without a valid closing ']'
	ErrBadAttributeLine                        // non-comment line without a usable key=value
	ErrAttributeBeforeSection                  // attribute seen before any section header
	ErrInvalidUTF8                             // input is not valid UTF-8
)

// String returns a short description of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrBadSectionHeader:
		return "malformed section header"
	case ErrBadAttributeLine:
		return "malformed attribute line"
	case ErrAttributeBeforeSection:
		return "attribute before first section header"
	case ErrInvalidUTF8:
		return "input is not valid UTF-8"
	default:
		return "parse error"
	}
}

// ParseError reports the first offending line of a failed parse. The parse
// aborts on the first error; there is no skip-and-continue mode. Line and
// Text carry enough context to produce a diagnostic without re-scanning the
// input.
type ParseError struct {
	Kind ErrorKind
	Line int    // 1-based line number
	Text string // verbatim offending line
}

// Error formats the diagnostic with a snippet pointing at the bad line.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	fmt.Fprintf(&b, "\n  --> line %d\n", e.Line)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Line, e.Text)
	b.WriteString("   | ^")
	return b.String()
}
