package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		number string
		region string
		want   string
	}{
		{"US ten digit", "3105550134", "US", "+13105550134"},
		{"US formatted", "(310) 555-0134", "US", "+13105550134"},
		{"US with country code", "1-310-555-0134", "US", "+13105550134"},
		{"already E.164", "+13105550134", "US", "+13105550134"},
		{"international with plus keeps its country", "+447911123456", "US", "+447911123456"},
		{"empty region falls back to US", "310-555-0134", "", "+13105550134"},
		{"empty input", "", "US", ""},
		{"garbage returned unchanged", "call me maybe", "US", "call me maybe"},
		{"too short returned unchanged", "555", "US", "555"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.number, tt.region))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("310-555-0134", "US"))
	assert.True(t, IsValid("+447911123456", ""))
	assert.False(t, IsValid("555", "US"))
	assert.False(t, IsValid("not a number", "US"))
}
