package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/templates"
	"github.com/foundryos/foundry/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize Foundry OS v1.1 with Manifest System",
		Long:  `Create the hub directory layout, the default configuration, and the welcome README.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("🏗️  Initializing Foundry OS v1.1...")
			fmt.Println("📋 Enabling PLUG-AND-PLAY Project System...")

			// Resolving the hub through wire also creates the directory layout.
			hub := wire.Hub()

			if _, err := os.Stat(hub.ConfigPath()); os.IsNotExist(err) {
				if err := config.Save(hub, config.Default(hub)); err != nil {
					return fmt.Errorf("failed to write default config: %w", err)
				}
			}

			if _, err := os.Stat(hub.ReadmePath()); os.IsNotExist(err) {
				welcome, err := templates.GetHubWelcome()
				if err != nil {
					return fmt.Errorf("failed to load welcome template: %w", err)
				}
				if err := os.WriteFile(hub.ReadmePath(), []byte(welcome), 0644); err != nil {
					return fmt.Errorf("failed to write welcome file: %w", err)
				}
			}

			fmt.Printf("✅ Foundry OS v1.1 initialized at: %s\n", hub.Dir)
			fmt.Printf("📁 Project manifests directory: %s\n", hub.ProjectsDir())
			fmt.Println("\n🎯 Next steps:")
			fmt.Println("1. Run 'foundry status' to see your empire")
			fmt.Println("2. Create a new project manifest and use 'foundry new --manifest=file.json'")
			fmt.Println("3. Run 'foundry projects' to see all discovered projects")

			return nil
		},
	}
}
