package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/secondary"
)

// AssignmentStore implements secondary.AssignmentStore over the hub's
// shared-context directory. Each assignment becomes one JSON file named
// <project-slug>_<assignment-id>.json.
type AssignmentStore struct {
	hub config.Hub
}

// NewAssignmentStore creates an assignment store rooted at the hub's
// shared-context directory.
func NewAssignmentStore(hub config.Hub) *AssignmentStore {
	return &AssignmentStore{hub: hub}
}

// Save persists an assignment record to the shared context directory.
func (s *AssignmentStore) Save(ctx context.Context, record *secondary.AssignmentRecord) error {
	if err := os.MkdirAll(s.hub.SharedContextDir(), 0755); err != nil {
		return fmt.Errorf("failed to create shared context directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assignment: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", manifest.Slug(record.Project), record.ID)
	path := filepath.Join(s.hub.SharedContextDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write assignment: %w", err)
	}
	return nil
}

// Ensure AssignmentStore implements the interface
var _ secondary.AssignmentStore = (*AssignmentStore)(nil)
