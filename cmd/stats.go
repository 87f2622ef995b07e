package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
)

func NewStatsCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show account counts and total balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := svc.Account.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			return views.RenderStatistics(stats)
		},
	}
}
