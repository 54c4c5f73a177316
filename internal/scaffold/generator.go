package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/foundryos/foundry/internal/config"
	scaffoldtmpl "github.com/foundryos/foundry/internal/templates/scaffold"
)

// Generator generates agent modules from templates.
type Generator struct {
	hub   config.Hub
	funcs template.FuncMap
}

// NewGenerator creates a Generator writing under the given hub.
func NewGenerator(hub config.Hub) *Generator {
	return &Generator{
		hub:   hub,
		funcs: scaffoldtmpl.TemplateFuncs(),
	}
}

// Render produces the agent module source for a spec.
func (g *Generator) Render(spec *AgentSpec) (string, error) {
	tmplContent, err := scaffoldtmpl.GetAgentTemplate()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("agent").Funcs(g.funcs).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Generate renders the agent module and writes it into the hub's agents
// directory, refusing to overwrite an existing agent. It returns the
// written path.
func (g *Generator) Generate(spec *AgentSpec) (string, error) {
	path := filepath.Join(g.hub.AgentsDir(), spec.ID+".go")

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("agent '%s' already exists", spec.ID)
	}

	content, err := g.Render(spec)
	if err != nil {
		return "", fmt.Errorf("failed to render agent module: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create agents directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write agent module: %w", err)
	}

	return path, nil
}
