package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "pocketbank.yaml"

// Config represents the top-level pocketbank.yaml configuration.
type Config struct {
	Customer CustomerConfig `yaml:"customer"`
	Fixtures string         `yaml:"fixtures,omitempty"` // optional seed data file
	Insights InsightsConfig `yaml:"insights,omitempty"`
	Transfer TransferConfig `yaml:"transfer"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// CustomerConfig overrides the greeting shown in the header.
type CustomerConfig struct {
	Name string `yaml:"name,omitempty"`
}

// InsightsConfig overrides the monthly budgeting figures. Empty values
// keep the fixture figures.
type InsightsConfig struct {
	MonthlySpend  string `yaml:"monthly_spend,omitempty"`
	MonthlyBudget string `yaml:"monthly_budget,omitempty"`
	SavingsGoal   int    `yaml:"savings_goal,omitempty"` // percent
}

// TransferConfig controls the transfer form.
type TransferConfig struct {
	DefaultAmount string `yaml:"default_amount"`
	PendingHold   string `yaml:"pending_hold"` // held back from the checking "Available" subtitle
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file,omitempty"`
}

// Load reads a pocketbank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, returning defaults when path is the default
// location and no file exists there.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Transfer: TransferConfig{
			DefaultAmount: "120.00",
			PendingHold:   "161.14",
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if _, err := c.PendingHold(); err != nil {
		return err
	}
	for name, v := range map[string]string{
		"insights.monthly_spend":  c.Insights.MonthlySpend,
		"insights.monthly_budget": c.Insights.MonthlyBudget,
	} {
		if v == "" {
			continue
		}
		if _, err := decimal.NewFromString(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want text or json", c.Log.Format)
	}
	return nil
}

// PendingHold returns the parsed checking hold amount. Empty means zero.
func (c *Config) PendingHold() (decimal.Decimal, error) {
	if c.Transfer.PendingHold == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(c.Transfer.PendingHold)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid transfer.pending_hold %q: %w", c.Transfer.PendingHold, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid transfer.pending_hold %q: must not be negative", c.Transfer.PendingHold)
	}
	return d, nil
}
