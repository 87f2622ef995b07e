package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
)

func NewAccountCmd(svc *service.Service, defaultCurrency string) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open, inspect and close accounts.",
		Long:  `Open savings and checking accounts, list them, show details and history, or close them.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc, defaultCurrency))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewShowCmd(svc))
	accountCmd.AddCommand(NewHistoryCmd(svc))
	accountCmd.AddCommand(NewDeleteCmd(svc))

	return accountCmd
}
