package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

type interestFlags struct {
	All bool
}

type InterestCommandRunner struct {
	svc   *service.Service
	flags *interestFlags
}

func NewInterestCmd(svc *service.Service) *cobra.Command {
	flags := &interestFlags{}

	cmd := &cobra.Command{
		Use:   "interest [account]",
		Short: "Credit interest to savings accounts",
		Long: `Credit one period of interest to a savings account, or to every savings
account with --all. Checking accounts are left untouched.`,
		Example: `  teller interest SAV000001
  teller interest --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &InterestCommandRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Apply to all savings accounts")

	return cmd
}

func (r *InterestCommandRunner) Run(ctx context.Context, args []string) error {
	switch {
	case r.flags.All && len(args) > 0:
		return fmt.Errorf("--all and an account number cannot be used at the same time")
	case r.flags.All:
		spinner, _ := pterm.DefaultSpinner.Start("Applying interest...")
		reports, err := r.svc.Account.ApplyInterestToAll(ctx)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			return err
		}
		return views.RenderInterestReports(reports)
	case len(args) == 0:
		return fmt.Errorf("must enter an account number or --all")
	}

	id, err := validation.ParseAccountID(args[0])
	if err != nil {
		return err
	}

	report, err := r.svc.Account.ApplyInterest(ctx, id)
	if err != nil {
		return err
	}
	if !report.Applied {
		pterm.Warning.Printf("No interest applied to %s (not a savings account, not found, or zero interest)\n", id)
		return nil
	}
	return views.RenderInterestReports([]service.InterestReport{report})
}
