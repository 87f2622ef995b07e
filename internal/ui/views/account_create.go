package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

type AccountSummaryItem struct {
	HolderName     string
	Type           model.AccountType
	Currency       string
	InitialDeposit string
}

// RenderAccountSummary shows what is about to be created.
func RenderAccountSummary(data AccountSummaryItem) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Holder"), data.HolderName},
		{pterm.Blue("Type"), data.Type.Description()},
		{pterm.Blue("Currency"), data.Currency},
		{pterm.Blue("Initial Deposit"), data.InitialDeposit},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(acc model.Account) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), acc.ID().String()},
		{pterm.Blue("Holder"), acc.HolderName()},
		{pterm.Blue("Type"), acc.Type().Description()},
		{pterm.Blue("Balance"), utils.FormatMoney(acc.Balance())},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
