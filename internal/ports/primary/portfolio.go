// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"errors"

	"github.com/foundryos/foundry/internal/manifest"
)

// ErrProjectNotFound is returned when no manifest matches a project name.
var ErrProjectNotFound = errors.New("project not found")

// PortfolioService defines the primary port for project portfolio operations.
type PortfolioService interface {
	// ListProjects discovers every project manifest in the hub, sorted
	// by project name, along with diagnostics for files that failed to
	// load.
	ListProjects(ctx context.Context) ([]manifest.Stored, []manifest.Diagnostic, error)

	// FindProject locates a project by name (case-insensitive).
	// Returns ErrProjectNotFound when no manifest matches.
	FindProject(ctx context.Context, name string) (*manifest.Stored, error)

	// EmpireStatus aggregates every manifest into portfolio totals.
	EmpireStatus(ctx context.Context) (*EmpireStatus, error)

	// CreateFromManifest registers a project by copying an existing
	// manifest file into the hub.
	CreateFromManifest(ctx context.Context, manifestPath string) (*manifest.Manifest, error)

	// CreateProject registers a project built from individual fields,
	// as submitted by the dashboard create form.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*manifest.Manifest, error)
}

// EmpireStatus contains the aggregated portfolio view.
type EmpireStatus struct {
	Summary     manifest.Summary
	Projects    []manifest.Stored
	Diagnostics []manifest.Diagnostic
}

// CreateProjectRequest contains the fields for creating a project without
// an on-disk manifest file.
type CreateProjectRequest struct {
	Name           string
	Type           string
	Status         string
	LeadStrategist string // Defaults to "Dashboard User"
	LeadArchitect  string // Defaults to "Foundry OS"
	Description    string // Defaults to a dated note
	Team           []string
	Revenue        string // Raw revenue string, e.g. "$1,234/mo"
	Users          int
}
