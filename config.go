package condtrace

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the condtrace configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig represents trace rendering settings
type OutputConfig struct {
	// Default output format (text or json); overridable with --format
	Format string `yaml:"format"`

	// Disable ANSI colors even on a terminal
	NoColor bool `yaml:"no_color"`

	// Suppress the per-line header above each trace
	NoHeader bool `yaml:"no_header"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		return getDefaultConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Output.Format == "" {
		config.Output.Format = FormatText
	}

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// getDefaultConfig returns the configuration used when no file is present
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// IsValidOutputFormat reports whether format names a supported renderer
func IsValidOutputFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

func validateConfig(config *Config) error {
	if !IsValidOutputFormat(config.Output.Format) {
		return fmt.Errorf("%w: unknown output format %q", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
