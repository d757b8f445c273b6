package ingest

import (
	"math"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "reference encoding",
			input:    "4815577",
			expected: 48.15577,
		},
		{
			name:     "longitude encoding",
			input:    "1153408",
			expected: 11.53408,
		},
		{
			name:     "short but valid",
			input:    "481",
			expected: 48.1,
		},
		{
			name:     "already decimal",
			input:    "48.15577",
			expected: 48.15577,
		},
		{
			name:     "negative decimal",
			input:    "-11.53408",
			expected: -11.53408,
		},
		{
			name:     "surrounding whitespace",
			input:    "  4815577 ",
			expected: 48.15577,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCoordinate(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseCoordinateMalformed(t *testing.T) {
	// Malformed input must come back as NaN, the flagged invalid value,
	// never as a silently wrong number
	inputs := []string{"", "48", "4", "48a5577", "48.1.5", "abc", "-", "48 15577"}

	for _, input := range inputs {
		if result := ParseCoordinate(input); !math.IsNaN(result) {
			t.Errorf("ParseCoordinate(%q) = %v, want NaN", input, result)
		}
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"0", false},
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"", false},
		{" 1 ", true},
	}

	for _, tt := range tests {
		if result := parseFlag(tt.input); result != tt.expected {
			t.Errorf("parseFlag(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}
