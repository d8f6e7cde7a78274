package language

import (
	"slices"
	"testing"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes
		{"en", "en"},
		{"EN", "en"},
		{"de", "de"},
		{"nb", "no"},
		// 3-letter codes convert
		{"eng", "en"},
		{"spa", "es"},
		{"fre", "fr"},
		{"ger", "de"},
		{"cze", "cs"},
		// Word forms
		{"english", "en"},
		{"French", "fr"},
		{"slovenian", "sl"},
		// BCP-47 tags
		{"en-US", "en"},
		{"pt_BR", "pt"},
		{"de-AT", "de"},
		// Unsupported or unknown
		{"ja", ""},
		{"xyz", ""},
		{"", ""},
		{" ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToISO2(tt.input)
			if result != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"el", "Greek"},
		{"en-GB", "English"},
		{"", "Unknown"},
		{"zz", "ZZ"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestModel(t *testing.T) {
	if model, ok := Model("en-US"); !ok || model != "english" {
		t.Fatalf("Model(en-US) = %q, %v", model, ok)
	}
	if model, ok := Model("nn"); !ok || model != "norwegian" {
		t.Fatalf("Model(nn) = %q, %v", model, ok)
	}
	if _, ok := Model("ko"); ok {
		t.Fatal("expected Korean to have no sentence model")
	}
}

func TestSupported(t *testing.T) {
	codes := Supported()
	if len(codes) != len(languages) {
		t.Fatalf("expected %d codes, got %d", len(languages), len(codes))
	}
	if !slices.IsSorted(codes) {
		t.Fatalf("expected sorted codes, got %v", codes)
	}
	if !slices.Contains(codes, "en") {
		t.Fatalf("expected en in %v", codes)
	}
}
