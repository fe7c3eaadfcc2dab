package condtrace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "condtrace.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)

	assert.Equal(t, FormatText, config.Output.Format)
	assert.False(t, config.Output.NoColor)
	assert.False(t, config.Output.NoHeader)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\n  no_color: true\n  no_header: true\n")

	config, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, FormatJSON, config.Output.Format)
	assert.True(t, config.Output.NoColor)
	assert.True(t, config.Output.NoHeader)
}

func TestLoadConfigDefaultsMissingFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  no_color: true\n")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, FormatText, config.Output.Format)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\nunknown_section:\n  x: 1\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")

	_, err := LoadConfig(path)
	assert.IsError(t, err, ErrConfigValidation)
}

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected bool
	}{
		{FormatText, true},
		{FormatJSON, true},
		{"", false},
		{"xml", false},
		{"TEXT", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidOutputFormat(tt.format))
		})
	}
}
