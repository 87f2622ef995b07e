package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/constants"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Policy     PolicyConfig   `mapstructure:"policy"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	// Path is the sqlite3 file. Empty means the app data dir.
	Path string `mapstructure:"path"`
	// DSN is used by the postgres driver only.
	DSN string `mapstructure:"dsn"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

// PolicyConfig holds decimal strings so that YAML floats never get involved.
type PolicyConfig struct {
	Savings  SavingsPolicyConfig  `mapstructure:"savings"`
	Checking CheckingPolicyConfig `mapstructure:"checking"`
}

type SavingsPolicyConfig struct {
	InterestRate   string `mapstructure:"interest_rate"`
	MinimumBalance string `mapstructure:"minimum_balance"`
}

type CheckingPolicyConfig struct {
	OverdraftLimit string `mapstructure:"overdraft_limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Policy is the parsed form of PolicyConfig. Amounts carry no currency;
// they take the currency of the account they are applied to.
type Policy struct {
	SavingsInterestRate   decimal.Decimal
	SavingsMinimumBalance decimal.Decimal
	CheckingOverdraft     decimal.Decimal
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite3", Path: ""},
		Defaults: DefaultsConfig{Currency: "USD"},
		Policy: PolicyConfig{
			Savings: SavingsPolicyConfig{
				InterestRate:   constants.DefaultSavingsInterestRate,
				MinimumBalance: constants.DefaultSavingsMinimumBalance,
			},
			Checking: CheckingPolicyConfig{
				OverdraftLimit: constants.DefaultCheckingOverdraftLimit,
			},
		},
		Log: LogConfig{Level: "warn"},
	}
}

// ParsePolicy parses the configured policy values. Empty values fall back to
// the built-in defaults.
func (c *Config) ParsePolicy() (Policy, error) {
	rate, err := parsePolicyValue("policy.savings.interest_rate", c.Policy.Savings.InterestRate, constants.DefaultSavingsInterestRate)
	if err != nil {
		return Policy{}, err
	}
	minimum, err := parsePolicyValue("policy.savings.minimum_balance", c.Policy.Savings.MinimumBalance, constants.DefaultSavingsMinimumBalance)
	if err != nil {
		return Policy{}, err
	}
	overdraft, err := parsePolicyValue("policy.checking.overdraft_limit", c.Policy.Checking.OverdraftLimit, constants.DefaultCheckingOverdraftLimit)
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		SavingsInterestRate:   rate,
		SavingsMinimumBalance: minimum,
		CheckingOverdraft:     overdraft,
	}, nil
}

func parsePolicyValue(key, raw, fallback string) (decimal.Decimal, error) {
	if raw == "" {
		raw = fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid %s %q: must not be negative", key, raw)
	}
	return d, nil
}
