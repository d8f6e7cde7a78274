package qabbala

import (
	"errors"
	"fmt"
	"strings"

	"aqcalc/internal/textutil"
)

// ErrUnscorable reports a character that reached the table lookup without
// having a value. Standardize filters such characters out, so this only
// surfaces if the filter and the table disagree.
var ErrUnscorable = errors.New("character has no AQ value")

// CharError identifies the offending character of an ErrUnscorable failure.
type CharError struct {
	Char   rune
	Offset int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("score: %q at byte %d: %v", e.Char, e.Offset, ErrUnscorable)
}

func (e *CharError) Unwrap() error { return ErrUnscorable }

// Standardize returns the character sequence that Score sums: text folded to
// ASCII, lower-cased, and filtered down to a-z and 0-9.
func Standardize(text string) string {
	folded := strings.ToLower(textutil.Fold(text))
	var b strings.Builder
	b.Grow(len(folded))
	for i := 0; i < len(folded); i++ {
		if isAlnum(folded[i]) {
			b.WriteByte(folded[i])
		}
	}
	return b.String()
}

// Score returns the AQ value of text. Empty text and text without letters or
// digits score 0.
func Score(text string) (int, error) {
	sum := 0
	for i, r := range Standardize(text) {
		v, ok := Value(r)
		if !ok {
			return 0, &CharError{Char: r, Offset: i}
		}
		sum += v
	}
	return sum, nil
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
