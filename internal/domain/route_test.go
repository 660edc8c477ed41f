package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPreference(t *testing.T) {
	tests := []struct {
		name       string
		preference RoutePreference
		expected   bool
	}{
		{"safest", PreferSafest, true},
		{"fastest", PreferFastest, true},
		{"balanced", PreferBalanced, true},
		{"empty", RoutePreference(""), false},
		{"unknown", RoutePreference("scenic"), false},
		{"case sensitive", RoutePreference("Safest"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidPreference(tt.preference))
		})
	}
}
