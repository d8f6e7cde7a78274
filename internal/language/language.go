package language

import (
	"sort"
	"strings"

	xlanguage "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	model   string   // punkt training set name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", "english", []string{"english"}},
	{"cs", "ces", "cze", "Czech", "czech", []string{"czech"}},
	{"da", "dan", "", "Danish", "danish", []string{"danish"}},
	{"nl", "nld", "dut", "Dutch", "dutch", []string{"dutch"}},
	{"et", "est", "", "Estonian", "estonian", []string{"estonian"}},
	{"fi", "fin", "", "Finnish", "finnish", []string{"finnish"}},
	{"fr", "fra", "fre", "French", "french", []string{"french"}},
	{"de", "deu", "ger", "German", "german", []string{"german"}},
	{"el", "ell", "gre", "Greek", "greek", []string{"greek"}},
	{"it", "ita", "", "Italian", "italian", []string{"italian"}},
	{"no", "nor", "", "Norwegian", "norwegian", []string{"norwegian", "bokmal"}},
	{"pl", "pol", "", "Polish", "polish", []string{"polish"}},
	{"pt", "por", "", "Portuguese", "portuguese", []string{"portuguese"}},
	{"sl", "slv", "", "Slovene", "slovene", []string{"slovene", "slovenian"}},
	{"es", "spa", "", "Spanish", "spanish", []string{"spanish"}},
	{"sv", "swe", "", "Swedish", "swedish", []string{"swedish"}},
	{"tr", "tur", "", "Turkish", "turkish", []string{"turkish"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
	// Norwegian Bokmål and Nynorsk share the Norwegian model.
	byCode2["nb"] = byCode2["no"]
	byCode2["nn"] = byCode2["no"]
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	if tag, err := xlanguage.Parse(strings.ReplaceAll(code, "_", "-")); err == nil {
		if base, conf := tag.Base(); conf != xlanguage.No {
			if e, ok := byCode2[base.String()]; ok {
				return e
			}
		}
	}
	return nil
}

// ToISO2 converts any recognized language code, word or tag to ISO 639-1.
// Returns empty string for unrecognized input.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Model returns the punkt training set name for code.
func Model(code string) (string, bool) {
	e := lookup(code)
	if e == nil {
		return "", false
	}
	return e.model, true
}

// Supported lists the ISO 639-1 codes with a sentence model, sorted.
func Supported() []string {
	out := make([]string, 0, len(languages))
	for _, e := range languages {
		out = append(out, e.code2)
	}
	sort.Strings(out)
	return out
}
