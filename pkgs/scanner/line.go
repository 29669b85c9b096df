package scanner

// LineKind classifies a single physical line of an entry file.
type LineKind int

const (
	EOF              LineKind = iota // End of input
	Blank                            // Whitespace-only line
	Comment                          // Line starting with '#'
	SectionHeader                    // [Name]
	Attribute                        // Key=Value
	BadSectionHeader                 // '[' line without a valid closing ']'
	BadAttribute                     // No '=' separator, or an empty key
)

// String returns a human-readable name for the line kind.
func (k LineKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Blank:
		return "Blank"
	case Comment:
		return "Comment"
	case SectionHeader:
		return "SectionHeader"
	case Attribute:
		return "Attribute"
	case BadSectionHeader:
		return "BadSectionHeader"
	case BadAttribute:
		return "BadAttribute"
	default:
		return "Unknown"
	}
}

// Line is one classified physical line.
//
// Raw always holds the verbatim line text without its newline, so callers
// can produce precise diagnostics without re-scanning the input. Name is set
// for SectionHeader lines, Key and Value for Attribute lines.
type Line struct {
	Kind  LineKind
	Num   int    // 1-based line number
	Raw   string // Verbatim line text, newline excluded
	Name  string // Section name (SectionHeader only)
	Key   string // Attribute key, locale suffix included (Attribute only)
	Value string // Attribute value (Attribute only)
}
