package qabbala

import (
	"errors"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"punctuation only", "!?.,;-", 0},
		{"a", "a", 10},
		{"z", "z", 35},
		{"upper A", "A", 10},
		{"digits", "0123456789", 45},
		{"abc", "abc", 33},
		{"ignores separators", "a!!!b", 21},
		{"mixed separators", "a-b c!", 33},
		{"word", "hello", 17 + 14 + 21 + 21 + 24},
		{"alphabet", "abcdefghijklmnopqrstuvwxyz", 585},
		{"accented", "Café", 12 + 10 + 15 + 14},
		{"non latin script dropped after transliteration", "☃", 0},
		{"vulgar fraction", "½", 1 + 2},
		{"superscript", "²", 2},
		{"roman numeral", "Ⅻ", 33 + 18 + 18},
		{"l with middle dot", "ŀ", 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.input)
			if err != nil {
				t.Fatalf("Score(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestScoreCaseAndAccentInsensitive(t *testing.T) {
	variants := []string{"Café", "cafe", "CAFE", "CAFÉ", "ca-fé!"}
	want, err := Score("cafe")
	if err != nil {
		t.Fatalf("Score(cafe): %v", err)
	}
	for _, v := range variants {
		got, err := Score(v)
		if err != nil {
			t.Fatalf("Score(%q): %v", v, err)
		}
		if got != want {
			t.Errorf("Score(%q) = %d, want %d", v, got, want)
		}
	}
}

func TestValue(t *testing.T) {
	for i, r := range "abcdefghijklmnopqrstuvwxyz" {
		got, ok := Value(r)
		if !ok || got != i+10 {
			t.Errorf("Value(%q) = %d, %v; want %d, true", r, got, ok, i+10)
		}
	}
	for i, r := range "0123456789" {
		got, ok := Value(r)
		if !ok || got != i {
			t.Errorf("Value(%q) = %d, %v; want %d, true", r, got, ok, i)
		}
	}
	for _, r := range []rune{' ', '-', 'é', 0, 0x7F, -1, 'ß'} {
		if _, ok := Value(r); ok {
			t.Errorf("Value(%q) unexpectedly ok", r)
		}
	}
}

func TestStandardize(t *testing.T) {
	if got := Standardize("Ça va? Oui, 100%!"); got != "cavaoui100" {
		t.Fatalf("Standardize = %q, want %q", got, "cavaoui100")
	}
}

func TestEntries(t *testing.T) {
	entries := Entries()
	if len(entries) != 36 {
		t.Fatalf("expected 36 entries, got %d", len(entries))
	}
	if entries[0] != (Entry{Char: 'a', Value: 10}) {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[25] != (Entry{Char: 'z', Value: 35}) {
		t.Fatalf("unexpected z entry %+v", entries[25])
	}
	if entries[35] != (Entry{Char: '9', Value: 9}) {
		t.Fatalf("unexpected last entry %+v", entries[35])
	}
}

func TestCharErrorUnwrap(t *testing.T) {
	err := error(&CharError{Char: '!', Offset: 3})
	if !errors.Is(err, ErrUnscorable) {
		t.Fatalf("expected CharError to match ErrUnscorable")
	}
	var ce *CharError
	if !errors.As(err, &ce) || ce.Offset != 3 {
		t.Fatalf("expected CharError with offset 3, got %v", err)
	}
}
