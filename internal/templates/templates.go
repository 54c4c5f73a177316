package templates

import (
	"embed"
)

//go:embed hub/*.md
var hubTemplates embed.FS

// GetHubWelcome returns the hub welcome README content
func GetHubWelcome() (string, error) {
	content, err := hubTemplates.ReadFile("hub/welcome.md")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
