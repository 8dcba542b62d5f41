package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Teeth Cleaning", "Teeth Cleaning"},
		{"surrounding space", "  Teeth Cleaning  ", "Teeth Cleaning"},
		{"inner runs", "Teeth \t  Cleaning", "Teeth Cleaning"},
		{"tabs and newlines", "Teeth\nCleaning", "Teeth Cleaning"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabelPreservesCase(t *testing.T) {
	if got := NormalizeLabel(" 10:00 AM "); got != "10:00 AM" {
		t.Errorf("expected case-preserving trim, got %q", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail(" Patient@Example.COM "); got != "patient@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+1 (555) 123-4567", "+15551234567"},
		{"01712 345 678", "01712345678"},
		{"", ""},
		{"call me", ""},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.input); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
