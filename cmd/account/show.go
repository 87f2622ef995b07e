package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account>",
		Short: "Show account details and available balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseAccountID(args[0])
			if err != nil {
				return err
			}

			acc, found, err := svc.Account.FindAccount(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("account %s not found", id)
			}

			return views.RenderAccountDetail(acc)
		},
	}
}
