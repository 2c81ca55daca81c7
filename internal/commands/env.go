package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/config"
	"github.com/pocketbank-dev/pocketbank/internal/fixtures"
	"github.com/pocketbank-dev/pocketbank/internal/logging"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath   string
	fixturesPath string
	logLevel     string
	logFormat    string
}

// env is everything a subcommand needs to run against the demo bank.
type env struct {
	cfg    *config.Config
	store  *fixtures.Store
	state  *bank.State
	logger *slog.Logger
}

// loadConfig reads the config file and applies flag overrides.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.fixturesPath != "" {
		cfg.Fixtures = o.fixturesPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	return cfg, nil
}

// newEnv loads config and fixtures and seeds a fresh bank state. Logs go
// to logOut.
func (o *globalOptions) newEnv(logOut io.Writer) (*env, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return newEnvWithLogger(cfg, logger)
}

func newEnvWithLogger(cfg *config.Config, logger *slog.Logger) (*env, error) {
	store, err := loadStore(cfg)
	if err != nil {
		return nil, err
	}
	hold, err := cfg.PendingHold()
	if err != nil {
		return nil, err
	}
	state := bank.New(store, bank.Options{PendingHold: &hold, Logger: logger})
	logger.Debug("bank state seeded",
		"accounts", len(store.Accounts()),
		"payees", len(store.Payees()),
		"fixtures", cfg.Fixtures)
	return &env{cfg: cfg, store: store, state: state, logger: logger}, nil
}

// loadStore returns the configured fixtures with config overrides applied.
func loadStore(cfg *config.Config) (*fixtures.Store, error) {
	store := fixtures.Default()
	if cfg.Fixtures != "" {
		var err error
		if store, err = fixtures.Load(cfg.Fixtures); err != nil {
			return nil, err
		}
	}

	if cfg.Customer.Name != "" {
		store = store.WithCustomer(cfg.Customer.Name)
	}

	in := store.Insights()
	changed := false
	if v := cfg.Insights.MonthlySpend; v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid insights.monthly_spend %q: %w", v, err)
		}
		in.MonthlySpend, changed = d, true
	}
	if v := cfg.Insights.MonthlyBudget; v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid insights.monthly_budget %q: %w", v, err)
		}
		in.MonthlyBudget, changed = d, true
	}
	if cfg.Insights.SavingsGoal != 0 {
		in.SavingsGoal, changed = cfg.Insights.SavingsGoal, true
	}
	if changed {
		store = store.WithInsights(in)
	}
	return store, nil
}
