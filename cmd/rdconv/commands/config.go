package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config selects the codec variant used for conversions.
type Config struct {
	Variant string `toml:"variant"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
