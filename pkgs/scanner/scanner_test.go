package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifySingleLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Line
	}{
		{
			name:  "blank line",
			input: "\n",
			want:  Line{Kind: Blank, Num: 1, Raw: ""},
		},
		{
			name:  "whitespace only is blank",
			input: " \t \n",
			want:  Line{Kind: Blank, Num: 1, Raw: " \t "},
		},
		{
			name:  "comment",
			input: "# a comment\n",
			want:  Line{Kind: Comment, Num: 1, Raw: "# a comment"},
		},
		{
			name:  "indented comment",
			input: "   # indented\n",
			want:  Line{Kind: Comment, Num: 1, Raw: "   # indented"},
		},
		{
			name:  "section header",
			input: "[Desktop Entry]\n",
			want:  Line{Kind: SectionHeader, Num: 1, Raw: "[Desktop Entry]", Name: "Desktop Entry"},
		},
		{
			name:  "section header trims inner whitespace",
			input: "[ Unit ]\n",
			want:  Line{Kind: SectionHeader, Num: 1, Raw: "[ Unit ]", Name: "Unit"},
		},
		{
			name:  "attribute",
			input: "Name=Firefox\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Name=Firefox", Key: "Name", Value: "Firefox"},
		},
		{
			name:  "attribute without trailing newline",
			input: "Name=Firefox",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Name=Firefox", Key: "Name", Value: "Firefox"},
		},
		{
			name:  "one leading value space stripped",
			input: "Name= Firefox\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Name= Firefox", Key: "Name", Value: "Firefox"},
		},
		{
			name:  "only one leading value space stripped",
			input: "Name=  Firefox\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Name=  Firefox", Key: "Name", Value: " Firefox"},
		},
		{
			name:  "key trimmed around equals",
			input: "Name = Firefox\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Name = Firefox", Key: "Name", Value: "Firefox"},
		},
		{
			name:  "value keeps its own equals signs",
			input: "Exec=env FOO=bar firefox\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Exec=env FOO=bar firefox", Key: "Exec", Value: "env FOO=bar firefox"},
		},
		{
			name:  "empty value",
			input: "Keywords=\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "Keywords=", Key: "Keywords", Value: ""},
		},
		{
			name:  "locale suffix stays in the key",
			input: "GenericName[es]=Navegador web\n",
			want:  Line{Kind: Attribute, Num: 1, Raw: "GenericName[es]=Navegador web", Key: "GenericName[es]", Value: "Navegador web"},
		},
		{
			name:  "unterminated section header",
			input: "[Unit\n",
			want:  Line{Kind: BadSectionHeader, Num: 1, Raw: "[Unit"},
		},
		{
			name:  "empty section name",
			input: "[]\n",
			want:  Line{Kind: BadSectionHeader, Num: 1, Raw: "[]"},
		},
		{
			name:  "bracket inside section name",
			input: "[Uni]t]\n",
			want:  Line{Kind: BadSectionHeader, Num: 1, Raw: "[Uni]t]"},
		},
		{
			name:  "no equals sign",
			input: "NoEqualsSignHere\n",
			want:  Line{Kind: BadAttribute, Num: 1, Raw: "NoEqualsSignHere"},
		},
		{
			name:  "empty key",
			input: "=value\n",
			want:  Line{Kind: BadAttribute, Num: 1, Raw: "=value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New([]byte(tt.input)).Next()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("classification mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineNumbers(t *testing.T) {
	input := "[Unit]\n# comment\n\nDescription=demo\n"
	want := []Line{
		{Kind: SectionHeader, Num: 1, Raw: "[Unit]", Name: "Unit"},
		{Kind: Comment, Num: 2, Raw: "# comment"},
		{Kind: Blank, Num: 3, Raw: ""},
		{Kind: Attribute, Num: 4, Raw: "Description=demo", Key: "Description", Value: "demo"},
	}

	got := New([]byte(input)).Lines()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("line sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEOFIsSticky(t *testing.T) {
	s := NewString("[Unit]")
	if ln := s.Next(); ln.Kind != SectionHeader {
		t.Fatalf("expected SectionHeader, got %s", ln.Kind)
	}
	for i := 0; i < 3; i++ {
		if ln := s.Next(); ln.Kind != EOF {
			t.Fatalf("call %d after end: expected EOF, got %s", i, ln.Kind)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	s := New(nil)
	if ln := s.Next(); ln.Kind != EOF {
		t.Fatalf("expected EOF on empty input, got %s", ln.Kind)
	}
}

func TestLastLineWithoutNewline(t *testing.T) {
	got := NewString("[Unit]\nDescription=demo").Lines()
	want := []Line{
		{Kind: SectionHeader, Num: 1, Raw: "[Unit]", Name: "Unit"},
		{Kind: Attribute, Num: 2, Raw: "Description=demo", Key: "Description", Value: "demo"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("line sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestLineKindString(t *testing.T) {
	kinds := map[LineKind]string{
		EOF:              "EOF",
		Blank:            "Blank",
		Comment:          "Comment",
		SectionHeader:    "SectionHeader",
		Attribute:        "Attribute",
		BadSectionHeader: "BadSectionHeader",
		BadAttribute:     "BadAttribute",
		LineKind(99):     "Unknown",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("LineKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
