// Package scaffold provides templates for agent code generation.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed agent/*.tmpl
var scaffoldTemplates embed.FS

// GetAgentTemplate returns the content of the agent module template.
func GetAgentTemplate() (string, error) {
	content, err := scaffoldTemplates.ReadFile("agent/agent.go.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
		"title":      capitalize,
		"join":       strings.Join,
		"quotedList": formatQuotedList,
	}
}

// formatQuotedList formats values as Go string literals for a slice body.
// e.g., ["analyze", "build"] -> `"analyze", "build"`
func formatQuotedList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
