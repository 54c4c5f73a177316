package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/scaffold"
	"github.com/foundryos/foundry/internal/wire"
)

var (
	agentID           string
	agentDescription  string
	agentSpecialty    string
	agentCapabilities []string
	agentRegister     bool
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage AI agent modules",
	Long:  "Create AI agent modules with the standardized Foundry OS interface",
}

var agentCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new AI agent module",
	Long: `Generate an agent module in the hub's agents directory with a task
dispatcher, capability handlers, memory-bank knowledge sharing, and a
health check.

Examples:
  foundry agent create "SEO Specialist"
  foundry agent create "Data Miner" -s "data extraction" -c analyze -c report --register`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := scaffold.BuildAgentSpec(args[0], agentID, agentDescription, agentSpecialty, agentCapabilities)
		if err != nil {
			return err
		}

		hub := wire.Hub()
		path, err := scaffold.NewGenerator(hub).Generate(spec)
		if err != nil {
			return err
		}

		if agentRegister {
			cfg := wire.Config()
			cfg.RegisterAgent(spec.ID, config.Agent{
				Name:         spec.Name,
				Specialty:    spec.Specialty,
				Capabilities: spec.Capabilities,
			})
			if err := config.Save(hub, cfg); err != nil {
				return fmt.Errorf("failed to register agent: %w", err)
			}
		}

		fmt.Printf("✅ Created agent: %s\n", spec.Name)
		fmt.Printf("📍 Location: %s\n", path)
		fmt.Printf("🆔 Agent ID: %s\n", spec.ID)
		fmt.Printf("🎯 Specialty: %s\n", spec.Specialty)
		fmt.Printf("💪 Capabilities: %s\n", strings.Join(spec.Capabilities, ", "))

		steps := []string{fmt.Sprintf("Edit %s to implement agent logic", path)}
		if !agentRegister {
			steps = append(steps, "Update foundry.yaml to register the agent")
		}
		steps = append(steps, fmt.Sprintf("Test with: foundry assign 'Test task' --project=test --agent=%s", spec.ID))

		fmt.Println("\n📝 Next steps:")
		for i, step := range steps {
			fmt.Printf("   %d. %s\n", i+1, step)
		}

		return nil
	},
}

func init() {
	agentCreateCmd.Flags().StringVar(&agentID, "id", "", "Agent ID (defaults to snake_case name)")
	agentCreateCmd.Flags().StringVarP(&agentDescription, "description", "d", scaffold.DefaultDescription, "Agent description")
	agentCreateCmd.Flags().StringVarP(&agentSpecialty, "specialty", "s", scaffold.DefaultSpecialty, "Agent specialty")
	agentCreateCmd.Flags().StringArrayVarP(&agentCapabilities, "capabilities", "c", nil, "Agent capabilities (can specify multiple)")
	agentCreateCmd.Flags().BoolVar(&agentRegister, "register", false, "Register the agent in foundry.yaml")

	agentCmd.AddCommand(agentCreateCmd)
}

// AgentCmd returns the agent command
func AgentCmd() *cobra.Command {
	return agentCmd
}
