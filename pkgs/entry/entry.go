// Package entry parses FreeDesktop entry files: the shared textual format
// behind Desktop Entry (.desktop) files, Icon Theme index.theme files, and
// systemd unit files. The format resembles INI but is not INI: attribute
// keys may carry locale suffixes (Name[en_US]=...), duplicate keys and
// duplicate section names are legal, and an attribute before the first
// section header is an error rather than a member of an implicit default
// section.
//
// Parsing is a single synchronous pass over in-memory text. The scanner
// package classifies physical lines; this package assembles them into an
// ordered, immutable Entry and exposes first-definition-wins lookup
// alongside full in-order iteration.
package entry

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/fdokit/entryfile/pkgs/scanner"
)

// Parse builds an Entry from complete file contents. The input must be
// valid UTF-8. The first malformed or misplaced line aborts the parse,
// reported as a *ParseError; no partial Entry is returned.
func Parse(input []byte) (*Entry, error) {
	if !utf8.Valid(input) {
		return nil, invalidUTF8Error(input)
	}

	ent := &Entry{}
	var current *Section
	sc := scanner.New(input)
	for {
		ln := sc.Next()
		switch ln.Kind {
		case scanner.EOF:
			return ent, nil
		case scanner.Blank, scanner.Comment:
			// No structural effect.
		case scanner.SectionHeader:
			current = &Section{name: ln.Name}
			ent.sections = append(ent.sections, current)
		case scanner.Attribute:
			if current == nil {
				return nil, &ParseError{Kind: ErrAttributeBeforeSection, Line: ln.Num, Text: ln.Raw}
			}
			current.attrs = append(current.attrs, Attribute{Key: ln.Key, Value: ln.Value})
		case scanner.BadSectionHeader:
			return nil, &ParseError{Kind: ErrBadSectionHeader, Line: ln.Num, Text: ln.Raw}
		case scanner.BadAttribute:
			return nil, &ParseError{Kind: ErrBadAttributeLine, Line: ln.Num, Text: ln.Raw}
		}
	}
}

// ParseString is a convenience wrapper over Parse.
func ParseString(input string) (*Entry, error) {
	return Parse([]byte(input))
}

// ParseFile reads and parses the entry file at path.
func ParseFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// invalidUTF8Error locates the first invalid byte so the diagnostic can
// name the line containing it.
func invalidUTF8Error(input []byte) *ParseError {
	line := 1
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size == 1 {
			start := bytes.LastIndexByte(input[:i], '\n') + 1
			length := bytes.IndexByte(input[start:], '\n')
			if length < 0 {
				length = len(input) - start
			}
			return &ParseError{Kind: ErrInvalidUTF8, Line: line, Text: string(input[start : start+length])}
		}
		if r == '\n' {
			line++
		}
		i += size
	}
	return &ParseError{Kind: ErrInvalidUTF8, Line: line}
}
