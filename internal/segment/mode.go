package segment

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how input text is divided into units.
type Mode int

const (
	// LineMode yields one unit per non-blank line (poetry).
	LineMode Mode = iota
	// SentenceMode yields one unit per sentence (prose).
	SentenceMode
)

// ErrUnknownMode is returned when a mode name is not recognized.
var ErrUnknownMode = errors.New("unknown segmentation mode")

// ParseMode accepts "line"/"poetry" and "sentence"/"prose", case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "line", "lines", "poetry":
		return LineMode, nil
	case "sentence", "sentences", "prose":
		return SentenceMode, nil
	default:
		return LineMode, fmt.Errorf("%w %q (want line or sentence)", ErrUnknownMode, value)
	}
}

func (m Mode) String() string {
	switch m {
	case LineMode:
		return "line"
	case SentenceMode:
		return "sentence"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// UnitLabel is the column heading used for units produced in this mode.
func (m Mode) UnitLabel() string {
	if m == SentenceMode {
		return "Line/Sentence"
	}
	return "Line"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != LineMode && m != SentenceMode {
		return nil, fmt.Errorf("%w %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
