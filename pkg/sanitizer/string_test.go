package sanitizer

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims surrounding whitespace", "  John Doe  ", "John Doe"},
		{"collapses internal whitespace", "John \t  Doe", "John Doe"},
		{"strips control characters", "John\x00Doe", "JohnDoe"},
		{"empty input", "", ""},
		{"unicode preserved", "José Müller", "José Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.expected {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  Employee@InnovateCorp.COM "); got != "employee@innovatecorp.com" {
		t.Errorf("unexpected result: %q", got)
	}
}
