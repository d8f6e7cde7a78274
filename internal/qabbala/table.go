package qabbala

import "unicode/utf8"

const unscored int8 = -1

var table = buildTable()

func buildTable() [utf8.RuneSelf]int8 {
	var t [utf8.RuneSelf]int8
	for i := range t {
		t[i] = unscored
	}
	for r := '0'; r <= '9'; r++ {
		t[r] = int8(r - '0')
	}
	for r := 'a'; r <= 'z'; r++ {
		t[r] = int8(r-'a') + 10
	}
	return t
}

// Value returns the AQ value of a single ASCII letter or digit. Upper-case
// letters are looked up as their lower-case form. The boolean is false for
// any other rune.
func Value(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 0 || r >= utf8.RuneSelf {
		return 0, false
	}
	v := table[r]
	if v == unscored {
		return 0, false
	}
	return int(v), true
}

// Entries returns the table entries in alphabet order followed by digits,
// for reference listings.
func Entries() []Entry {
	out := make([]Entry, 0, 36)
	for r := 'a'; r <= 'z'; r++ {
		out = append(out, Entry{Char: r, Value: int(table[r])})
	}
	for r := '0'; r <= '9'; r++ {
		out = append(out, Entry{Char: r, Value: int(table[r])})
	}
	return out
}

// Entry is a single character/value pair of the lookup table.
type Entry struct {
	Char  rune
	Value int
}
