package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

func RenderAccountDetail(acc model.Account) error {
	pterm.Println()
	ui.PrintL2Title("Account %s", acc.ID())

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Holder", acc.HolderName()},
		{"Type", acc.Type().Description()},
		{"Balance", utils.FormatMoney(acc.Balance())},
		{"Available", utils.FormatMoney(acc.AvailableBalance())},
	}

	switch a := acc.(type) {
	case *model.SavingsAccount:
		infoData = append(infoData,
			[]string{"Minimum Balance", utils.FormatMoney(a.MinimumBalance())},
			[]string{"Interest Rate", fmt.Sprintf("%s%%", a.InterestRate().Shift(2).String())},
			[]string{"Next Interest", utils.FormatMoney(a.CalculateInterest())},
		)
	case *model.CheckingAccount:
		infoData = append(infoData,
			[]string{"Overdraft Limit", utils.FormatMoney(a.OverdraftLimit())},
		)
	}

	infoData = append(infoData, []string{"Opened", acc.CreatedAt().Local().Format(constants.DateTimeFormat)})

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
