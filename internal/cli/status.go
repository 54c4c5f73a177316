package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var showAll bool
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show AI Empire status and project overview",
		Long: `Display the empire status report: portfolio totals, revenue, the
status distribution, agent workload, and per-project details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.PortfolioAdapter().Status(context.Background(), showAll, summaryOnly)
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Show detailed project information")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "Show empire summary only")

	return cmd
}
