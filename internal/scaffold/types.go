// Package scaffold provides code generation for Foundry OS agent modules.
package scaffold

// AgentSpec contains all information needed to generate an agent module.
type AgentSpec struct {
	Name         string   // Display name: "SEO Specialist"
	ID           string   // snake_case identifier: "seo_specialist"
	TypeName     string   // Generated Go type: "SeoSpecialistAgent"
	Description  string   // One-line description for the file header
	Specialty    string   // Specialty rendered into the type doc
	Capabilities []string // e.g., ["analyze", "build", "optimize", "report"]
	Date         string   // Creation date: "2026-08-23"
}
