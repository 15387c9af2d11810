package web

import (
	"encoding/json"
	"os"

	"github.com/pmla-casebook/internal/store"
)

// Config represents the dashboard server configuration
type Config struct {
	Server   ServerConfig  `json:"server"`
	Snapshot string        `json:"snapshot"`
	Features FeatureConfig `json:"features"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// FeatureConfig contains feature toggles
type FeatureConfig struct {
	SummaryEnabled bool `json:"summary_enabled"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if config.Snapshot == "" {
		config.Snapshot = store.DefaultPath
	}

	return &config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Snapshot: store.DefaultPath,
		Features: FeatureConfig{
			SummaryEnabled: true,
		},
	}
}
