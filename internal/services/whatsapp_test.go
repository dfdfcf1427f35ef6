package services

import (
	"testing"
)

func TestNormalizeChatID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "local number without country code",
			input:    "03001234567",
			expected: "923001234567@c.us",
		},
		{
			name:     "number with country code",
			input:    "923001234567",
			expected: "923001234567@c.us",
		},
		{
			name:     "number with plus prefix",
			input:    "+923001234567",
			expected: "923001234567@c.us",
		},
		{
			name:     "group id passes through",
			input:    "120363407813232111@g.us",
			expected: "120363407813232111@g.us",
		},
		{
			name:     "local number with suffix",
			input:    "03001234567@c.us",
			expected: "923001234567@c.us",
		},
		{
			name:     "surrounding whitespace",
			input:    " 03001234567 ",
			expected: "923001234567@c.us",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeChatID(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeChatID(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}
