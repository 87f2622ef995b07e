package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

func RenderStatistics(stats service.Statistics) error {
	ui.PrintL1Title("Bank Statistics")

	if stats.TotalAccounts == 0 {
		pterm.Info.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{{"Type", "Accounts", "Total Balance"}}
	for _, t := range stats.Totals {
		tableData = append(tableData, []string{
			t.Type.Description(),
			fmt.Sprint(t.Accounts),
			utils.FormatMoney(t.Total),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", stats.TotalAccounts)
	return nil
}

func RenderInterestReports(reports []service.InterestReport) error {
	applied := 0
	tableData := pterm.TableData{{"Account", "Interest", "New Balance"}}
	for _, r := range reports {
		if !r.Applied {
			tableData = append(tableData, []string{r.AccountID.String(), pterm.Gray("none"), utils.FormatMoney(r.NewBalance)})
			continue
		}
		applied++
		tableData = append(tableData, []string{
			r.AccountID.String(),
			pterm.Green("+" + utils.FormatMoney(r.Interest)),
			utils.FormatMoney(r.NewBalance),
		})
	}

	if len(reports) > 0 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	pterm.Success.Printf("Interest applied to %d of %d savings accounts\n", applied, len(reports))
	return nil
}
