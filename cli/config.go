package cli

import (
	"github.com/shibukawa/condtrace"
)

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*condtrace.Config, error) {
	return condtrace.LoadConfig(configPath)
}
