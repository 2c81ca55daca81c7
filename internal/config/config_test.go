package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Customer.Name = "Alex"
	cfg.Fixtures = "seed.yaml"
	cfg.Insights.MonthlyBudget = "4000"
	cfg.Server.Addr = ":9090"

	path := filepath.Join(t.TempDir(), "pocketbank.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Alex", got.Customer.Name)
	assert.Equal(t, "seed.yaml", got.Fixtures)
	assert.Equal(t, "4000", got.Insights.MonthlyBudget)
	assert.Equal(t, cfg.Transfer, got.Transfer)
	assert.Equal(t, ":9090", got.Server.Addr)
	assert.Equal(t, 5*time.Second, got.Server.ShutdownTimeout)
	assert.Equal(t, cfg.Log, got.Log)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "120.00", cfg.Transfer.DefaultAmount)
	assert.Equal(t, "161.14", cfg.Transfer.PendingHold)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Fixtures)
	require.NoError(t, cfg.Validate())

	hold, err := cfg.PendingHold()
	require.NoError(t, err)
	assert.Equal(t, "161.14", hold.StringFixed(2))
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketbank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "120.00", cfg.Transfer.DefaultAmount)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault("elsewhere.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist, "explicit paths must exist")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"bad hold", func(c *Config) { c.Transfer.PendingHold = "abc" }, "pending_hold"},
		{"negative hold", func(c *Config) { c.Transfer.PendingHold = "-1" }, "must not be negative"},
		{"bad budget", func(c *Config) { c.Insights.MonthlyBudget = "x" }, "insights.monthly_budget"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketbank.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "default_amount: \"120.00\"")
	assert.Contains(t, contents, "pending_hold: \"161.14\"")
	assert.Contains(t, contents, "shutdown_timeout: 5s")
	assert.Contains(t, contents, "format: text")
}
