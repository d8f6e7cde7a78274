package textutil

import (
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns an ASCII approximation of text. Combining marks are removed
// after compatibility decomposition ("é" -> "e", "ﬁ" -> "fi"), and whatever
// is still outside ASCII is transliterated ("ß" -> "ss", "æ" -> "ae",
// "ø" -> "o"). Case is preserved.
func Fold(text string) string {
	if isASCII(text) {
		return text
	}
	stripped, _, err := transform.String(newMarkStripper(), text)
	if err != nil {
		stripped = text
	}
	if isASCII(stripped) {
		return stripped
	}
	return unidecode.Unidecode(stripped)
}

// newMarkStripper builds a fresh chain per call; transform.Chain keeps
// internal buffers and must not be shared between goroutines.
func newMarkStripper() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
