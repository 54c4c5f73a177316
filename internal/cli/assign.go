package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	var project string
	var agent string

	cmd := &cobra.Command{
		Use:   "assign [task]",
		Short: "Assign a task to an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AssignmentAdapter().Assign(context.Background(), args[0], project, agent)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project name")
	cmd.Flags().StringVarP(&agent, "agent", "a", "", "Agent to assign")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("agent")

	return cmd
}
