package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHubDir overrides the hub location when set.
const EnvHubDir = "FOUNDRY_HUB"

// Hub is the root directory holding all Foundry OS state. Every path the
// system touches derives from it, so constructors receive a Hub value
// instead of consulting package globals.
type Hub struct {
	Dir string
}

// ResolveHub determines the hub directory. The FOUNDRY_HUB environment
// variable takes precedence; otherwise the hub lives at ~/ai-empire-hub.
func ResolveHub() (Hub, error) {
	if dir := os.Getenv(EnvHubDir); dir != "" {
		return Hub{Dir: dir}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Hub{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	return Hub{Dir: filepath.Join(home, "ai-empire-hub")}, nil
}

// ProjectsDir returns the directory that holds project manifest files.
func (h Hub) ProjectsDir() string {
	return filepath.Join(h.Dir, "projects")
}

// SharedContextDir returns the directory for task assignment records.
func (h Hub) SharedContextDir() string {
	return filepath.Join(h.Dir, "shared-context")
}

// LogsDir returns the directory for daily event logs.
func (h Hub) LogsDir() string {
	return filepath.Join(h.Dir, "logs")
}

// AgentsDir returns the directory that holds generated agent modules.
func (h Hub) AgentsDir() string {
	return filepath.Join(h.Dir, "agents")
}

// TemplatesDir returns the directory for project templates.
func (h Hub) TemplatesDir() string {
	return filepath.Join(h.Dir, "templates")
}

// MemoryBankDir returns the directory agents use to share knowledge.
func (h Hub) MemoryBankDir() string {
	return filepath.Join(h.Dir, "memory-bank")
}

// MetricsDir returns the directory for collected metrics.
func (h Hub) MetricsDir() string {
	return filepath.Join(h.Dir, "metrics")
}

// ConfigPath returns the on-disk location of config/foundry.yaml.
func (h Hub) ConfigPath() string {
	return filepath.Join(h.Dir, "config", "foundry.yaml")
}

// SchemaPath returns the on-disk location of the project manifest schema.
func (h Hub) SchemaPath() string {
	return filepath.Join(h.Dir, "schemas", "project_manifest.json")
}

// ReadmePath returns the on-disk location of the hub welcome file.
func (h Hub) ReadmePath() string {
	return filepath.Join(h.Dir, "README.md")
}

// EnsureLayout creates the hub directory tree. Existing directories are
// left untouched.
func (h Hub) EnsureLayout() error {
	dirs := []string{
		"agents", "projects", "templates",
		"shared-context", "logs", "config",
		"memory-bank", "metrics", "schemas",
	}
	for _, name := range dirs {
		if err := os.MkdirAll(filepath.Join(h.Dir, name), 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", name, err)
		}
	}
	return nil
}
