package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/cli"
	"github.com/foundryos/foundry/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "foundry",
		Short:   "Foundry OS - manifest-driven project and task bookkeeping",
		Version: version.String(),
		Long: `Foundry OS runs an empire of manifest-driven projects. Every project is
a JSON manifest in the hub; foundry discovers them, aggregates empire
metrics, routes tasks to agents, and scaffolds new agent modules.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ProjectsCmd())
	rootCmd.AddCommand(cli.NewCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	// Developer tools
	rootCmd.AddCommand(cli.AgentCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
