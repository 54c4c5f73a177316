package scaffold

import (
	"fmt"
	"strings"
	"time"

	"github.com/foundryos/foundry/internal/manifest"
)

// Defaults applied when the caller leaves spec fields empty.
const (
	DefaultDescription = "A specialized Foundry OS agent"
	DefaultSpecialty   = "general tasks"
)

// DefaultCapabilities returns the capability set used when none are given.
func DefaultCapabilities() []string {
	return []string{"analyze", "build", "optimize", "report"}
}

// BuildAgentSpec builds an AgentSpec from CLI inputs, deriving the ID and
// type name from the display name and filling defaults for empty fields.
func BuildAgentSpec(name, id, description, specialty string, capabilities []string) (*AgentSpec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("agent name is required")
	}

	if id == "" {
		id = manifest.Slug(name)
	}
	if description == "" {
		description = DefaultDescription
	}
	if specialty == "" {
		specialty = DefaultSpecialty
	}
	if len(capabilities) == 0 {
		capabilities = DefaultCapabilities()
	}

	return &AgentSpec{
		Name:         name,
		ID:           id,
		TypeName:     ToTypeName(name),
		Description:  description,
		Specialty:    specialty,
		Capabilities: capabilities,
		Date:         time.Now().Format("2006-01-02"),
	}, nil
}

// ToTypeName converts an agent display name to its generated Go type name.
// Each word keeps only a leading capital, and an "Agent" suffix is appended
// unless the name already ends with one.
// e.g., "SEO Specialist" -> "SeoSpecialistAgent"
func ToTypeName(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = capitalize(strings.ToLower(word))
	}

	typeName := strings.Join(words, "")
	if !strings.HasSuffix(typeName, "Agent") {
		typeName += "Agent"
	}
	return typeName
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
