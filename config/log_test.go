package config

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("GENERATOR", ColorService, &buf)
	logger.Printf("%s built maze", InfoTag)

	line := buf.String()
	assert.Contains(t, line, "GENERATOR")
	assert.Contains(t, line, "[INFO]")
	assert.True(t, strings.HasSuffix(line, "built maze\n"))
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Setenv("MAZEGEN_TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsIntWithDefault("MAZEGEN_TEST_INT", 7))

	t.Setenv("MAZEGEN_TEST_INT", "forty-two")
	assert.Equal(t, 7, getEnvAsIntWithDefault("MAZEGEN_TEST_INT", 7))

	os.Unsetenv("MAZEGEN_TEST_MISSING")
	assert.Equal(t, 3, getEnvAsIntWithDefault("MAZEGEN_TEST_MISSING", 3))
	assert.Equal(t, "release", getEnvWithDefault("MAZEGEN_TEST_MISSING", "release"))
}
