// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DPS150 DeviceConfig `yaml:"dps150"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Port          string        `yaml:"port"`
	BaudRate      int           `yaml:"baud_rate"`
	ReadTimeoutMs int           `yaml:"read_timeout_ms"`
	Poll          PollConfig    `yaml:"poll"`
	Settle        SettleConfig  `yaml:"settle"`
	Log           LogConfig     `yaml:"log"`
	Monitor       MonitorConfig `yaml:"monitor"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- SETTLE ----

type SettleConfig struct {
	WriteMs int `yaml:"write_ms"`
	InitMs  int `yaml:"init_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Load reads and parses the yaml configuration file.
// Validation and normalization are separate, later stages.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read failed: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config parse failed: %w", err)
	}

	return &cfg, nil
}
