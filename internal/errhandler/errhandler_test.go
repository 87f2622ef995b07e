package errhandler

import (
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/store"
)

func TestIsInterrupt(t *testing.T) {
	if !IsInterrupt(fmt.Errorf("input cancelled: %w", huh.ErrUserAborted)) {
		t.Fatal("wrapped huh abort must count as interrupt")
	}
	if !IsInterrupt(terminal.InterruptErr) {
		t.Fatal("survey interrupt must count as interrupt")
	}
	if IsInterrupt(store.ErrRecordNotFound) {
		t.Fatal("store error is not an interrupt")
	}
}

func TestHint(t *testing.T) {
	if Hint(fmt.Errorf("x: %w", model.ErrInvalidAccountID)) == "" {
		t.Fatal("expected hint for invalid account id")
	}
	if Hint(fmt.Errorf("x: %w", money.ErrCurrencyMismatch)) == "" {
		t.Fatal("expected hint for currency mismatch")
	}
	if Hint(fmt.Errorf("boom")) != "" {
		t.Fatal("unexpected hint for generic error")
	}
}
