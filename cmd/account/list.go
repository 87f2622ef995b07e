package account

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
)

type listFlags struct {
	Type string
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List all accounts with their current and available balances.
You can filter by account type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (savings, checking)")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	accounts, err := r.svc.Account.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	if r.flags.Type != "" {
		accType, err := model.ParseAccountType(r.flags.Type)
		if err != nil {
			return err
		}
		accounts = filterByType(accounts, accType)
	}

	return views.NewAccountListView().Render(accounts)
}

func filterByType(accounts []model.Account, accType model.AccountType) []model.Account {
	var filtered []model.Account
	for _, acc := range accounts {
		if acc.Type() == accType {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
