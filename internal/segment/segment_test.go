package segment

import (
	"reflect"
	"strings"
	"testing"
)

type stubSplitter struct {
	out []string
}

func (s stubSplitter) Sentences(string) []string { return s.out }

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"drops blank lines", "hello\n\n  \nworld", []string{"hello", "world"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"lone cr", "one\rtwo", []string{"one", "two"}},
		{"keeps indentation", "  indented\n\tpoem", []string{"  indented", "\tpoem"}},
		{"all blank", "\n \n\t\n", []string{}},
		{"empty", "", []string{}},
		{"duplicates kept", "same\nsame", []string{"same", "same"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Lines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentencesFallbacks(t *testing.T) {
	got := Sentences(stubSplitter{}, "  no punctuation here  ")
	if !reflect.DeepEqual(got, []string{"no punctuation here"}) {
		t.Fatalf("unexpected fallback %q", got)
	}
	got = Sentences(stubSplitter{}, "")
	if !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("expected single empty unit, got %q", got)
	}
	got = Sentences(stubSplitter{out: []string{" One. ", "", " Two."}}, "ignored")
	if !reflect.DeepEqual(got, []string{"One.", "", "Two."}) {
		t.Fatalf("expected empty sentence to pass through, got %q", got)
	}
}

func TestSegmenterSplit(t *testing.T) {
	seg := New(stubSplitter{out: []string{"A.", "B."}})
	lines, err := seg.Split("a\n\nb", LineMode)
	if err != nil {
		t.Fatalf("Split line: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	sentences, err := seg.Split("A. B.", SentenceMode)
	if err != nil {
		t.Fatalf("Split sentence: %v", err)
	}
	if !reflect.DeepEqual(sentences, []string{"A.", "B."}) {
		t.Fatalf("unexpected sentences %q", sentences)
	}
	if _, err := seg.Split("x", Mode(9)); err == nil {
		t.Fatal("expected error for invalid mode")
	}
	if _, err := New(nil).Split("x", SentenceMode); err == nil {
		t.Fatal("expected error without sentence splitter")
	}
}

func TestPunktEnglish(t *testing.T) {
	p, err := NewPunkt("en-US")
	if err != nil {
		t.Fatalf("NewPunkt: %v", err)
	}
	if p.Language() != "en" {
		t.Fatalf("unexpected language %q", p.Language())
	}

	got := Sentences(p, "no punctuation here")
	if !reflect.DeepEqual(got, []string{"no punctuation here"}) {
		t.Fatalf("unexpected single sentence %q", got)
	}

	got = Sentences(p, "The price rose to 3.14 dollars. Then it fell!")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %q", got)
	}
	if !strings.Contains(got[0], "3.14") {
		t.Fatalf("decimal split a sentence: %q", got)
	}

	got = Sentences(p, "Dr. Smith arrived. He sat down.")
	if len(got) != 2 || got[0] != "Dr. Smith arrived." {
		t.Fatalf("abbreviation split a sentence: %q", got)
	}
}

func TestPunktUnsupportedLanguage(t *testing.T) {
	if _, err := NewPunkt("ja"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}
