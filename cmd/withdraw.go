package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

type WithdrawCommandRunner struct {
	svc             *service.Service
	flags           *amountFlags
	defaultCurrency string
}

func NewWithdrawCmd(svc *service.Service, defaultCurrency string) *cobra.Command {
	flags := &amountFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw <account> <amount>",
		Short: "Withdraw funds from an account",
		Long: `Withdraw funds from an account.

Savings accounts refuse withdrawals that would drop below the minimum balance.
Checking accounts may go negative down to their overdraft limit.`,
		Example: `  teller withdraw CHK000001 60`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &WithdrawCommandRunner{
				svc:             svc,
				flags:           flags,
				defaultCurrency: defaultCurrency,
			}
			return runner.Run(cmd.Context(), args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")

	return cmd
}

func (r *WithdrawCommandRunner) Run(ctx context.Context, rawID, rawAmount string) error {
	id, err := validation.ParseAccountID(rawID)
	if err != nil {
		return err
	}

	amount, err := parseAmount(rawAmount, r.flags, r.defaultCurrency)
	if err != nil {
		return err
	}

	res, err := r.svc.Account.Withdraw(ctx, id, amount)
	if err != nil {
		return err
	}

	views.RenderOperationResult(res)
	return nil
}
