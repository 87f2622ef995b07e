package errhandler

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// Hint returns a short suggestion for well known errors, or "".
func Hint(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidAccountID):
		return "account numbers look like SAV000001 or CHK000001"
	case errors.Is(err, money.ErrCurrencyMismatch):
		return "pass --currency matching the account currency"
	case errors.Is(err, money.ErrInvalidCurrency):
		return "use an ISO 4217 code such as USD or EUR"
	case errors.Is(err, service.ErrSameAccount):
		return "choose two different accounts"
	case errors.Is(err, store.ErrRecordNotFound):
		return "run 'teller account list' to see existing accounts"
	default:
		return ""
	}
}

func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if hint := Hint(err); hint != "" {
		pterm.Info.Println(hint)
	}
}
