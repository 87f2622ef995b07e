package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePolicyDefaults(t *testing.T) {
	p, err := NewDefault().ParsePolicy()
	if err != nil {
		t.Fatalf("ParsePolicy err=%v", err)
	}
	if !p.SavingsInterestRate.Equal(decimal.RequireFromString("0.02")) ||
		!p.SavingsMinimumBalance.Equal(decimal.RequireFromString("50")) ||
		!p.CheckingOverdraft.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("policy=%+v", p)
	}
}

func TestParsePolicyEmptyFallsBack(t *testing.T) {
	cfg := &Config{}
	p, err := cfg.ParsePolicy()
	if err != nil {
		t.Fatalf("ParsePolicy err=%v", err)
	}
	if !p.CheckingOverdraft.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("overdraft=%s want 100", p.CheckingOverdraft)
	}
}

func TestParsePolicyRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"not a number", func(c *Config) { c.Policy.Savings.InterestRate = "two percent" }},
		{"negative minimum", func(c *Config) { c.Policy.Savings.MinimumBalance = "-1" }},
		{"negative overdraft", func(c *Config) { c.Policy.Checking.OverdraftLimit = "-0.01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mut(cfg)
			if _, err := cfg.ParsePolicy(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
