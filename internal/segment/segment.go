package segment

import (
	"fmt"
	"strings"
)

// SentenceSplitter divides prose into sentences, in order.
type SentenceSplitter interface {
	Sentences(text string) []string
}

// Segmenter splits text according to a Mode.
type Segmenter struct {
	sentences SentenceSplitter
}

// New returns a Segmenter that uses splitter for SentenceMode.
func New(splitter SentenceSplitter) *Segmenter {
	return &Segmenter{sentences: splitter}
}

// Split returns the units of text for mode.
func (s *Segmenter) Split(text string, mode Mode) ([]string, error) {
	switch mode {
	case LineMode:
		return Lines(text), nil
	case SentenceMode:
		if s == nil || s.sentences == nil {
			return nil, fmt.Errorf("segment: no sentence splitter configured")
		}
		return Sentences(s.sentences, text), nil
	default:
		return nil, fmt.Errorf("segment: %w %d", ErrUnknownMode, int(mode))
	}
}

// Lines splits text on line breaks ("\n", "\r\n" or a lone "\r") and drops
// lines that are empty or whitespace-only. Kept lines are returned untrimmed.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Sentences runs splitter over text and trims each sentence. Empty sentences
// are passed through. Text the splitter cannot divide yields a single unit
// holding the trimmed input, so empty input produces one empty unit.
func Sentences(splitter SentenceSplitter, text string) []string {
	raw := splitter.Sentences(text)
	if len(raw) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	out := make([]string, len(raw))
	for i, sentence := range raw {
		out[i] = strings.TrimSpace(sentence)
	}
	return out
}
