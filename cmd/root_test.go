package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupConfigFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"account", "list"}, ""},
		{"long", []string{"--config", "/tmp/a.yaml", "stats"}, "/tmp/a.yaml"},
		{"short", []string{"stats", "-c", "b.yaml"}, "b.yaml"},
		{"equals", []string{"--config=c.yaml"}, "c.yaml"},
		{"missing value", []string{"stats", "--config"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupConfigFlag(tt.args); got != tt.want {
				t.Errorf("lookupConfigFlag(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := map[string]string{
		"":                 "",
		"/var/teller.db":   "/var/teller.db",
		"~":                home,
		"~/data/teller.db": filepath.Join(home, "data/teller.db"),
	}
	for in, want := range tests {
		got, err := expandPath(in)
		if err != nil {
			t.Fatalf("expandPath(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("expandPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("account not found"); got != "Account not found" {
		t.Errorf("got %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestNoPartialArgs(t *testing.T) {
	check := noPartialArgs(3)
	cmd := NewTransferCmd(nil, "USD")

	if err := check(cmd, nil); err != nil {
		t.Errorf("no args: %v", err)
	}
	if err := check(cmd, []string{"SAV000001", "CHK000001", "10"}); err != nil {
		t.Errorf("all args: %v", err)
	}
	if err := check(cmd, []string{"SAV000001"}); err == nil {
		t.Error("partial args accepted")
	}
}

func TestParseAmountUsesDefaultCurrency(t *testing.T) {
	m, err := parseAmount("12.5", &amountFlags{}, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if m.CurrencyCode() != "EUR" || m.StringFixed() != "12.50" {
		t.Errorf("got %s", m)
	}

	m, err = parseAmount("1000", &amountFlags{Currency: "jpy"}, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if m.CurrencyCode() != "JPY" || m.StringFixed() != "1000" {
		t.Errorf("got %s", m)
	}
}
