// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/secondary"
	"github.com/foundryos/foundry/internal/schema"
)

// ManifestStore implements secondary.ManifestStore over the hub's
// projects directory. One JSON file per project, named by slug.
type ManifestStore struct {
	hub       config.Hub
	validator *schema.Validator
	events    secondary.EventLog
}

// NewManifestStore creates a manifest store rooted at the hub's projects
// directory. The validator may be nil, in which case schema checks are
// skipped during scans.
func NewManifestStore(hub config.Hub, validator *schema.Validator, events secondary.EventLog) *ManifestStore {
	return &ManifestStore{
		hub:       hub,
		validator: validator,
		events:    events,
	}
}

// Scan reads every *.json manifest in the projects directory. Files that
// fail to parse or validate become diagnostics and are logged; they never
// fail the scan. A missing projects directory yields empty results.
func (s *ManifestStore) Scan(ctx context.Context) ([]manifest.Stored, []manifest.Diagnostic, error) {
	entries, err := os.ReadDir(s.hub.ProjectsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var projects []manifest.Stored
	var diagnostics []manifest.Diagnostic

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.hub.ProjectsDir(), entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read manifest %s: %w", entry.Name(), err)
		}

		var m manifest.Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			diagnostics = s.report(diagnostics, manifest.Diagnostic{
				File: path,
				Kind: manifest.DiagInvalidJSON,
				Err:  err,
			})
			continue
		}

		if err := s.validator.Validate(data); err != nil {
			diagnostics = s.report(diagnostics, manifest.Diagnostic{
				File: path,
				Kind: manifest.DiagSchemaViolation,
				Err:  err,
			})
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat manifest %s: %w", entry.Name(), err)
		}

		projects = append(projects, manifest.Stored{
			Manifest: m,
			Path:     path,
			ModTime:  info.ModTime(),
		})
	}

	manifest.SortByName(projects)
	return projects, diagnostics, nil
}

// report records a diagnostic in the hub event log and collects it.
func (s *ManifestStore) report(diagnostics []manifest.Diagnostic, d manifest.Diagnostic) []manifest.Diagnostic {
	s.events.Log(d.Message())
	return append(diagnostics, d)
}

// Create writes a manifest document into the projects directory under
// the project's slug. The document bytes are stored as given.
func (s *ManifestStore) Create(ctx context.Context, projectName string, doc []byte) error {
	target := filepath.Join(s.hub.ProjectsDir(), manifest.Slug(projectName)+".json")

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("project '%s': %w", projectName, secondary.ErrProjectExists)
	}

	if err := os.MkdirAll(s.hub.ProjectsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create projects directory: %w", err)
	}

	if err := os.WriteFile(target, doc, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Ensure ManifestStore implements the interface
var _ secondary.ManifestStore = (*ManifestStore)(nil)
