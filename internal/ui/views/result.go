package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
)

// DescribeResult turns an operation result into a one line message.
func DescribeResult(res model.OperationResult) string {
	switch r := res.(type) {
	case model.DepositSuccess:
		return fmt.Sprintf("Deposit successful! New balance: %s", utils.FormatMoney(r.NewBalance))
	case model.WithdrawalSuccess:
		return fmt.Sprintf("Withdrawal successful! New balance: %s", utils.FormatMoney(r.NewBalance))
	case model.DepositFailed:
		return fmt.Sprintf("Deposit failed: %s", r.Reason)
	case model.WithdrawalFailed:
		return fmt.Sprintf("Withdrawal failed: %s", r.Reason)
	case model.InsufficientFunds:
		return fmt.Sprintf("Insufficient funds. Available: %s, requested: %s",
			utils.FormatMoney(r.Available), utils.FormatMoney(r.Requested))
	case model.ViolatesMinimumBalance:
		return fmt.Sprintf("Would violate minimum balance. Minimum: %s, resulting: %s",
			utils.FormatMoney(r.Minimum), utils.FormatMoney(r.ResultingBalance))
	default:
		return fmt.Sprintf("unexpected result %T", res)
	}
}

func DescribeTransfer(res model.TransferResult) string {
	switch r := res.(type) {
	case model.TransferCompleted:
		return fmt.Sprintf("Transfer completed! Source balance: %s, destination balance: %s",
			utils.FormatMoney(r.SourceBalance), utils.FormatMoney(r.DestinationBalance))
	case model.TransferRejected:
		if r.Cause != nil {
			return fmt.Sprintf("Transfer rejected: %s. %s", r.Reason, DescribeResult(r.Cause))
		}
		return fmt.Sprintf("Transfer rejected: %s", r.Reason)
	default:
		return fmt.Sprintf("unexpected result %T", res)
	}
}

func RenderOperationResult(res model.OperationResult) {
	if res.Succeeded() {
		pterm.Success.Println(DescribeResult(res))
		return
	}
	pterm.Error.Println(DescribeResult(res))
}

func RenderTransferResult(res model.TransferResult) {
	if res.Succeeded() {
		pterm.Success.Println(DescribeTransfer(res))
		return
	}
	pterm.Error.Println(DescribeTransfer(res))
}
