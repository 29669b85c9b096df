package entry

import "iter"

// Entry is a parsed entry file: an ordered sequence of sections. An Entry is
// never mutated after Parse returns, so it may be shared freely between
// concurrent readers without locking.
type Entry struct {
	sections []*Section
}

// Section is a named group of attributes, kept in the order they appeared in
// the source. Repeated section names are retained as distinct sections.
type Section struct {
	name  string
	attrs []Attribute
}

// Attribute is a single key=value line inside a section. Key is the verbatim
// key text and may carry a locale or parameter suffix such as Name[en_US];
// the suffix is opaque to lookup (see SplitKey for splitting it off).
type Attribute struct {
	Key   string
	Value string
}

// Len returns the number of sections, duplicates included.
func (e *Entry) Len() int { return len(e.sections) }

// Section returns the first section with the given name. Matching is exact
// and case-sensitive; when the file repeats a section name the first
// definition wins, and later occurrences remain visible through Sections.
// Absence is a normal outcome, not an error.
func (e *Entry) Section(name string) (*Section, bool) {
	for _, s := range e.sections {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// HasSection reports whether a section with the given name exists.
func (e *Entry) HasSection(name string) bool {
	_, ok := e.Section(name)
	return ok
}

// Sections iterates the sections in source order, including every occurrence
// of a repeated name. The sequence is restartable: each range starts over.
func (e *Entry) Sections() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for _, s := range e.sections {
			if !yield(s) {
				return
			}
		}
	}
}

// Name returns the section name as written between the brackets, trimmed.
func (s *Section) Name() string { return s.name }

// Len returns the number of attributes, duplicate keys included.
func (s *Section) Len() int { return len(s.attrs) }

// Attr returns the value of the first attribute whose key exactly matches,
// locale suffix included. When duplicate keys exist the first definition
// wins; all occurrences remain visible through Attributes.
func (s *Section) Attr(key string) (string, bool) {
	for _, a := range s.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the section defines the exact key.
func (s *Section) HasAttr(key string) bool {
	_, ok := s.Attr(key)
	return ok
}

// Attributes iterates the attributes in source order, duplicates included.
// The sequence is restartable: each range starts over.
func (s *Section) Attributes() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		for _, a := range s.attrs {
			if !yield(a) {
				return
			}
		}
	}
}
