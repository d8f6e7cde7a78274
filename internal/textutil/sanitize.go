package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(SanitizeCell(name)))
}

// SanitizeCell removes the ASCII control characters (0x00-0x1F) that are not
// allowed inside spreadsheet cells. Tab, line feed and carriage return are
// kept. Invalid UTF-8 sequences become U+FFFD. The function is idempotent.
func SanitizeCell(text string) string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	if strings.IndexFunc(text, isCellControl) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if isCellControl(r) {
			return -1
		}
		return r
	}, text)
}

func isCellControl(r rune) bool {
	return r < 0x20 && r != '\t' && r != '\n' && r != '\r'
}
