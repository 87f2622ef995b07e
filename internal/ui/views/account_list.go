package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	headers := []string{"Number", "Holder", "Type", "Balance", "Available"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatMoney(acc.Balance())
		available := utils.FormatMoney(acc.AvailableBalance())

		var coloredType, coloredBalance string
		switch acc.Type() {
		case model.Savings:
			coloredType = pterm.Cyan(acc.Type().Prefix())
		case model.Checking:
			coloredType = pterm.Magenta(acc.Type().Prefix())
		default:
			coloredType = string(acc.Type())
		}
		switch {
		case acc.Balance().IsNegative():
			coloredBalance = pterm.Red(balance)
		case acc.Balance().IsZero():
			coloredBalance = pterm.Gray(balance)
		default:
			coloredBalance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{acc.ID().String(), acc.HolderName(), coloredType, coloredBalance, available})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
