package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

type transferFlags struct {
	amountFlags
	Reference string
}

type TransferCommandRunner struct {
	svc             *service.Service
	flags           *transferFlags
	defaultCurrency string
}

func NewTransferCmd(svc *service.Service, defaultCurrency string) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer [from] [to] [amount]",
		Short: "Move funds between two accounts",
		Long: `Move funds between two accounts.

The transfer is all or nothing: if either side refuses, neither account changes.
Run without arguments to be prompted for each value.`,
		Example: `  teller transfer CHK000001 SAV000001 50 -r "monthly saving"`,
		Args:    cobra.MatchAll(cobra.RangeArgs(0, 3), noPartialArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &TransferCommandRunner{
				svc:             svc,
				flags:           flags,
				defaultCurrency: defaultCurrency,
			}
			if len(args) == 0 {
				return runner.InteractiveMode(cmd.Context())
			}
			return runner.Run(cmd.Context(), args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVarP(&flags.Reference, "reference", "r", "", "Free text stored with the transfer")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")

	return cmd
}

// noPartialArgs accepts either no positional args or exactly n.
func noPartialArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != n {
			return cobra.ExactArgs(n)(cmd, args)
		}
		return nil
	}
}

func (r *TransferCommandRunner) InteractiveMode(ctx context.Context) error {
	from, err := prompts.PromptAccountID("From account:", validation.ValidateAccountID)
	if err != nil {
		return err
	}
	to, err := prompts.PromptAccountID("To account:", validation.ValidateAccountID)
	if err != nil {
		return err
	}

	currency := r.flags.Currency
	if currency == "" {
		currency = r.defaultCurrency
	}
	amount, err := prompts.PromptAmount(fmt.Sprintf("Amount (%s):", currency), "Must be greater than zero", validation.PositiveAmount(currency))
	if err != nil {
		return err
	}

	if r.flags.Reference == "" {
		ref, err := prompts.PromptDescription("Reference (optional):", false)
		if err != nil {
			return err
		}
		r.flags.Reference = ref
	}

	return r.Run(ctx, from, to, amount)
}

func (r *TransferCommandRunner) Run(ctx context.Context, rawFrom, rawTo, rawAmount string) error {
	from, err := validation.ParseAccountID(rawFrom)
	if err != nil {
		return err
	}
	to, err := validation.ParseAccountID(rawTo)
	if err != nil {
		return err
	}

	amount, err := parseAmount(rawAmount, &r.flags.amountFlags, r.defaultCurrency)
	if err != nil {
		return err
	}

	res, err := r.svc.Account.TransferFunds(ctx, service.TransferCommand{
		From:      from,
		To:        to,
		Amount:    amount,
		Reference: strings.TrimSpace(r.flags.Reference),
	})
	if err != nil {
		return err
	}

	views.RenderTransferResult(res)
	return nil
}
