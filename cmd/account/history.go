package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
)

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "history <account>",
		Short: "Show the recorded events of an account",
		Long: `Show every recorded event of an account: opening, deposits, withdrawals
and outgoing transfers. History is kept after an account is closed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseAccountID(args[0])
			if err != nil {
				return err
			}

			events, err := svc.Account.History(cmd.Context(), id)
			if err != nil {
				return err
			}

			return views.RenderHistory(id, events)
		},
	}
}
