package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/version"
)

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show Foundry OS version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("🏭 Foundry OS v%s\n", version.Version)
			fmt.Println("The AI Empire Command Center - PLUG-AND-PLAY Edition")
		},
	}
}
