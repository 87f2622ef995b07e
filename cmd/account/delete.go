package account

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

type deleteFlags struct {
	Yes bool
}

type DeleteCommandRunner struct {
	svc   *service.Service
	flags *deleteFlags
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <account>",
		Short: "Close an account",
		Long:  `Close an account. Its history stays available. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *DeleteCommandRunner) Run(ctx context.Context, rawID string) error {
	id, err := validation.ParseAccountID(rawID)
	if err != nil {
		return err
	}

	acc, found, err := r.svc.Account.FindAccount(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("account %s not found", id)
	}

	pterm.Warning.Printf("About to close account %s:\n", id)
	if err := views.RenderAccountDetail(acc); err != nil {
		return err
	}
	if !acc.Balance().IsZero() {
		pterm.Warning.Printf("The account still holds %s\n", acc.Balance())
	}

	if !r.flags.Yes {
		pterm.Warning.Println("This action cannot be undone!")

		var confirmation bool
		confirmPrompt := &survey.Confirm{
			Message: "Do you want to close this account?",
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
			return err
		}

		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Account.DeleteAccount(ctx, id); err != nil {
		return err
	}

	pterm.Success.Printf("Account %s closed\n", id)
	ui.Separator()
	return nil
}
