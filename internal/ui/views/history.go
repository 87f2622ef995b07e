package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
)

// DescribeEvent returns the event kind and a short detail text.
func DescribeEvent(e model.DomainEvent) (string, string) {
	switch ev := e.(type) {
	case model.AccountOpened:
		return "Opened", fmt.Sprintf("%s for %s, initial %s",
			ev.AccountType.Description(), ev.HolderName, utils.FormatMoney(ev.InitialBalance))
	case model.FundsDeposited:
		return "Deposit", fmt.Sprintf("+%s -> %s", utils.FormatMoney(ev.Amount), utils.FormatMoney(ev.NewBalance))
	case model.FundsWithdrawn:
		return "Withdrawal", fmt.Sprintf("-%s -> %s", utils.FormatMoney(ev.Amount), utils.FormatMoney(ev.NewBalance))
	case model.FundsTransferred:
		detail := fmt.Sprintf("%s to %s", utils.FormatMoney(ev.Amount), ev.Destination)
		if ev.Reference != "" {
			detail += fmt.Sprintf(" (%s)", ev.Reference)
		}
		return "Transfer", detail
	default:
		return string(e.EventType()), ""
	}
}

func RenderHistory(id model.AccountID, events []model.DomainEvent) error {
	pterm.DefaultSection.Printf("History of %s", id)

	if len(events) == 0 {
		pterm.Info.Println("No recorded events")
		return nil
	}

	tableData := pterm.TableData{{"Time", "Event", "Details"}}
	for _, e := range events {
		kind, detail := DescribeEvent(e)
		tableData = append(tableData, []string{
			e.OccurredAt().Local().Format(constants.DateTimeFormat),
			kind,
			detail,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d events\n", len(events))
	return nil
}
