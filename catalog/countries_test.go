package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"USA", "US", true},
		{"US", "US", true},
		{"us", "US", true},
		{" deu ", "DE", true},
		{"JPN", "JP", true},
		{"XXX", "", false},
		{"U", "", false},
		{"", "", false},
		{"ZZ", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeCountry(tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
		assert.Equal(t, tt.want, got, "code for %q", tt.in)
	}
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Japan", CountryName("JP"))
	assert.Equal(t, "XQ", CountryName("XQ"), "unknown codes fall back to the code itself")
}
