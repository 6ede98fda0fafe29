package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Sunset Boulevard", "sunset-boulevard"},
		{"Deep Ocean", "deep-ocean"},

		// Special characters
		{"Retro: Arcade (v2)", "retro-arcade-v2"},
		{"Neon #1", "neon-1"},

		// Multiple spaces/hyphens
		{"Multiple   spaces", "multiple-spaces"},
		{"Already--hyphenated", "already-hyphenated"},
		{"  Leading spaces", "leading-spaces"},

		// Unicode and accents
		{"Café au lait", "cafe-au-lait"},
		{"Crème Brûlée", "creme-brulee"},

		// Edge cases
		{"", ""},
		{"   ", ""},
		{"---", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := map[string]string{
		"Café":     "cafe",
		"NAÏVE":    "naive",
		"#FF00AA":  "#ff00aa",
		"plain":    "plain",
		"Ångström": "angstrom",
	}
	for in, want := range tests {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}
