package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/dashboard"
	"github.com/foundryos/foundry/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the empire dashboard",
		Long:  `Open the terminal dashboard: live KPIs, charts, and the project portfolio.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(
				dashboard.New(wire.PortfolioService()),
				tea.WithAltScreen(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run dashboard: %w", err)
			}
			return nil
		},
	}
}
