// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/foundryos/foundry/internal/manifest"
)

// ErrProjectExists is returned by Create when a manifest file already
// occupies the target path.
var ErrProjectExists = errors.New("project already exists")

// ManifestStore defines the secondary port for project manifest persistence.
type ManifestStore interface {
	// Scan reads every *.json manifest in the projects directory.
	// Files that fail to parse or validate are reported as diagnostics
	// rather than failing the scan. The returned manifests are sorted
	// by project name. A missing projects directory yields empty results.
	Scan(ctx context.Context) ([]manifest.Stored, []manifest.Diagnostic, error)

	// Create writes a new manifest document into the projects directory
	// under the project's slug. Returns ErrProjectExists if the target
	// file is already present.
	Create(ctx context.Context, projectName string, doc []byte) error
}

// AssignmentStore defines the secondary port for task assignment records.
// Records are write-once: nothing in the system reads them back.
type AssignmentStore interface {
	// Save persists an assignment record to the shared context directory.
	Save(ctx context.Context, record *AssignmentRecord) error
}

// AssignmentRecord represents a task assignment as stored in shared context.
type AssignmentRecord struct {
	ID          string  `json:"id"`
	Task        string  `json:"task"`
	Project     string  `json:"project"`
	Agent       string  `json:"agent"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at"` // nil means null
	Result      *string `json:"result"`       // nil means null
}
