package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

type DepositCommandRunner struct {
	svc             *service.Service
	flags           *amountFlags
	defaultCurrency string
}

func NewDepositCmd(svc *service.Service, defaultCurrency string) *cobra.Command {
	flags := &amountFlags{}

	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit funds into an account",
		Example: `  # Deposit 150 in the default currency
  teller deposit SAV000001 150

  # Deposit into a EUR account
  teller deposit CHK000002 20.50 --currency EUR`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DepositCommandRunner{
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

func (r *DepositCommandRunner) Run(ctx context.Context, rawID, rawAmount string) error {
	id, err := validation.ParseAccountID(rawID)
	if err != nil {
		return err
	}

	amount, err := parseAmount(rawAmount, r.flags, r.defaultCurrency)
	if err != nil {
		return err
	}

	res, err := r.svc.Account.Deposit(ctx, id, amount)
	if err != nil {
		return err
	}

	views.RenderOperationResult(res)
	return nil
}
