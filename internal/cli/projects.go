package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/wire"
)

// ProjectsCmd returns the projects command
func ProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List all discovered projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.PortfolioAdapter().Projects(context.Background())
		},
	}
}
