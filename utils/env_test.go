package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOTEL_ADMIN_TEST_VAR", "set")
	assert.Equal(t, "set", EnvOrDefault("HOTEL_ADMIN_TEST_VAR", "fallback"))

	t.Setenv("HOTEL_ADMIN_TEST_VAR", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("HOTEL_ADMIN_TEST_VAR", "fallback"))

	assert.Equal(t, "fallback", EnvOrDefault("HOTEL_ADMIN_UNSET_VAR", "fallback"))
}
