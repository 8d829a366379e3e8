package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer prefix", "Bearer abc123", "abc123"},
		{"lowercase prefix", "bearer abc123", "abc123"},
		{"raw token", "abc123", "abc123"},
		{"padded", "  Bearer abc123  ", "abc123"},
		{"empty", "", ""},
		{"prefix only", "Bearer ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BearerToken(tt.header))
		})
	}
}
