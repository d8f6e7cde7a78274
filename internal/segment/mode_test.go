package segment

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"line", LineMode},
		{"Poetry", LineMode},
		{" sentence ", SentenceMode},
		{"PROSE", SentenceMode},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if err != nil {
				t.Fatalf("ParseMode(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseMode("verse"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestModeText(t *testing.T) {
	var payload struct {
		Mode Mode `json:"mode"`
	}
	if err := json.Unmarshal([]byte(`{"mode":"prose"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Mode != SentenceMode {
		t.Fatalf("expected sentence mode, got %v", payload.Mode)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"mode":"sentence"}` {
		t.Fatalf("unexpected json %s", out)
	}
	if _, err := Mode(7).MarshalText(); err == nil {
		t.Fatal("expected error marshaling invalid mode")
	}
}

func TestUnitLabel(t *testing.T) {
	if LineMode.UnitLabel() != "Line" {
		t.Fatalf("unexpected line label %q", LineMode.UnitLabel())
	}
	if SentenceMode.UnitLabel() != "Line/Sentence" {
		t.Fatalf("unexpected sentence label %q", SentenceMode.UnitLabel())
	}
}
