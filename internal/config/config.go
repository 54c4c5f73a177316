// Package config models the hub configuration file (config/foundry.yaml)
// and the hub directory layout itself.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/foundryos/foundry/internal/version"
)

// Config models config/foundry.yaml.
type Config struct {
	Version        string              `yaml:"version"`
	HubDirectory   string              `yaml:"hub_directory"`
	ManifestSystem bool                `yaml:"manifest_system"`
	Agents         map[string]Agent    `yaml:"agents"`
	Templates      map[string]Template `yaml:"templates"`
	Learning       Learning            `yaml:"learning"`
}

// Agent is one entry in the agents registry.
type Agent struct {
	Name         string   `yaml:"name"`
	Specialty    string   `yaml:"specialty,omitempty"`
	Capabilities []string `yaml:"capabilities,omitempty"`
}

// Template describes a reusable team composition for new projects.
type Template struct {
	Name         string   `yaml:"name"`
	Agents       []string `yaml:"agents"`
	DefaultStack string   `yaml:"default_stack"`
}

// Learning holds the self-improvement settings.
type Learning struct {
	MetricsThreshold float64 `yaml:"metrics_threshold"`
	AutoSavePatterns bool    `yaml:"auto_save_patterns"`
}

// Default returns the built-in configuration for a hub.
func Default(hub Hub) *Config {
	return &Config{
		Version:        version.Version,
		HubDirectory:   hub.Dir,
		ManifestSystem: true,
		Agents:         map[string]Agent{},
		Templates: map[string]Template{
			"SaaS_Launch_Playbook": {
				Name:         "SaaS Launch Team",
				Agents:       []string{"architect_specialist", "app_factory_specialist", "devops_specialist", "data_intelligence_agent"},
				DefaultStack: "react-node",
			},
			"restaurant_bot": {
				Name:         "Restaurant Bot Team",
				Agents:       []string{"api_integration_master", "app_factory_specialist", "qa_specialist"},
				DefaultStack: "python-fastapi",
			},
			"marketplace": {
				Name:         "Marketplace Team",
				Agents:       []string{"architect_specialist", "api_integration_master", "app_factory_specialist", "devops_specialist"},
				DefaultStack: "nextjs-postgres",
			},
		},
		Learning: Learning{
			MetricsThreshold: 0.25,
			AutoSavePatterns: false,
		},
	}
}

// Load reads config/foundry.yaml from the hub. A missing file yields the
// default configuration; a malformed file is an error.
func Load(hub Hub) (*Config, error) {
	data, err := os.ReadFile(hub.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(hub), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Agents == nil {
		cfg.Agents = map[string]Agent{}
	}
	if cfg.Templates == nil {
		cfg.Templates = map[string]Template{}
	}
	return &cfg, nil
}

// Save writes the configuration to config/foundry.yaml.
func Save(hub Hub, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(hub.ConfigPath()), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(hub.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Template looks up a project template by its identifier.
func (c *Config) Template(id string) (Template, bool) {
	tpl, ok := c.Templates[id]
	return tpl, ok
}

// AgentRegistered reports whether an agent ID appears in the registry.
func (c *Config) AgentRegistered(id string) bool {
	_, ok := c.Agents[id]
	return ok
}

// RegisterAgent adds an agent to the registry, replacing any existing
// entry under the same ID.
func (c *Config) RegisterAgent(id string, agent Agent) {
	if c.Agents == nil {
		c.Agents = map[string]Agent{}
	}
	c.Agents[id] = agent
}
