package representation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how values are rendered in failure messages.
type Config struct {
	// MaxDepth limits how deep composite values are dumped.
	// Zero means unlimited.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// MaxStringLength truncates long strings. Zero means no
	// truncation.
	MaxStringLength int `yaml:"max_string_length" json:"max_string_length"`

	// Diff appends a unified diff to equality failures whose
	// operands render to several lines.
	Diff bool `yaml:"diff" json:"diff"`
}

// DefaultConfig returns the configuration used by Default.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        10,
		MaxStringLength: 0,
		Diff:            true,
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from
// the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(
			"failed to read representation config %s: %w",
			path, err,
		)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration document on top of
// DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf(
			"failed to parse representation config: %w", err,
		)
	}

	if config.MaxDepth < 0 || config.MaxStringLength < 0 {
		return Config{}, errors.New(
			"invalid representation config: negative limit",
		)
	}

	return config, nil
}
