// Package config loads the full backtest configuration from YAML or JSON
// files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tsmom/backtest"
	"github.com/rustyeddy/tsmom/signal"
	"gopkg.in/yaml.v3"
)

// Config represents the complete backtest configuration.
type Config struct {
	Strategy signal.Config   `json:"strategy" yaml:"strategy"`
	Account  backtest.Config `json:"account" yaml:"account"`
	Data     DataConfig      `json:"data" yaml:"data"`
	Journal  JournalConfig   `json:"journal" yaml:"journal"`
}

// DataConfig selects the price series source.
type DataConfig struct {
	// CSVPath points at a bar CSV (time,open,high,low,close[,volume] or
	// time,close). Empty means the caller supplies bars some other way
	// (e.g. the CLI's synthetic series).
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type       string `json:"type,omitempty" yaml:"type,omitempty"` // "csv", "sqlite" or "" (disabled)
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Strategy.Validate(); err != nil {
		return err
	}
	if err := c.Account.Validate(); err != nil {
		return err
	}
	switch c.Journal.Type {
	case "", "sqlite", "csv":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or empty")
	}
	if c.Journal.Type == "csv" && (c.Journal.TradesFile == "" || c.Journal.EquityFile == "") {
		return fmt.Errorf("journal trades_file and equity_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Strategy: signal.DefaultConfig(),
		Account:  backtest.DefaultConfig(),
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tsmom.sqlite",
		},
	}
}
