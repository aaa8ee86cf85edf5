package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"thousands", 250000, "250.000"},
		{"millions", 1000000, "1.000.000"},
		{"uneven", 42500, "42.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatAmount(tt.amount)
			if result != tt.expected {
				t.Errorf("formatAmount(%d) = %q, want %q", tt.amount, result, tt.expected)
			}
		})
	}
}
