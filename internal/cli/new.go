package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/ports/primary"
	"github.com/foundryos/foundry/internal/wire"
)

// NewCmd returns the new command
func NewCmd() *cobra.Command {
	var manifestPath string
	var projectType string
	var status string
	var description string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new project",
		Long: `Create a new project, either from a manifest file (--manifest) or
inline from a name plus --type/--status/--description flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if manifestPath != "" {
				return wire.PortfolioAdapter().New(ctx, manifestPath)
			}

			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "❌ Error: --manifest parameter is required")
				fmt.Println("Example: foundry new --manifest=./my_project.json")
				return nil
			}

			return wire.PortfolioAdapter().Create(ctx, primary.CreateProjectRequest{
				Name:           args[0],
				Type:           projectType,
				Status:         status,
				Description:    description,
				LeadStrategist: "CLI User",
			})
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to project manifest file")
	cmd.Flags().StringVarP(&projectType, "type", "t", "", "Project type for inline creation")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Project status (default planning)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	return cmd
}
