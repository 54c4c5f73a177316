package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/primary"
	"github.com/foundryos/foundry/internal/ports/secondary"
	"github.com/foundryos/foundry/internal/schema"
)

// PortfolioServiceImpl implements the PortfolioService interface.
// Projects are whatever manifests the store discovers; there is no
// separate registry to keep in sync.
type PortfolioServiceImpl struct {
	store     secondary.ManifestStore
	validator *schema.Validator
	cfg       *config.Config
	events    secondary.EventLog
}

// NewPortfolioService creates a new PortfolioService with injected dependencies.
func NewPortfolioService(store secondary.ManifestStore, validator *schema.Validator, cfg *config.Config, events secondary.EventLog) *PortfolioServiceImpl {
	return &PortfolioServiceImpl{
		store:     store,
		validator: validator,
		cfg:       cfg,
		events:    events,
	}
}

// ListProjects discovers every project manifest in the hub.
func (s *PortfolioServiceImpl) ListProjects(ctx context.Context) ([]manifest.Stored, []manifest.Diagnostic, error) {
	return s.store.Scan(ctx)
}

// FindProject locates a project by name (case-insensitive).
func (s *PortfolioServiceImpl) FindProject(ctx context.Context, name string) (*manifest.Stored, error) {
	projects, _, err := s.store.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects: %w", err)
	}

	found, ok := manifest.FindByName(projects, name)
	if !ok {
		return nil, fmt.Errorf("project '%s': %w", name, primary.ErrProjectNotFound)
	}
	return &found, nil
}

// EmpireStatus aggregates every manifest into portfolio totals.
func (s *PortfolioServiceImpl) EmpireStatus(ctx context.Context) (*primary.EmpireStatus, error) {
	projects, diagnostics, err := s.store.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects: %w", err)
	}

	return &primary.EmpireStatus{
		Summary:     manifest.Aggregate(projects),
		Projects:    projects,
		Diagnostics: diagnostics,
	}, nil
}

// CreateFromManifest registers a project by copying an existing manifest
// file into the hub.
func (s *PortfolioServiceImpl) CreateFromManifest(ctx context.Context, manifestPath string) (*manifest.Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest file not found: %s", manifestPath)
		}
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := s.validator.Validate(data); err != nil {
		return nil, fmt.Errorf("manifest failed schema validation: %w", err)
	}

	// Re-indent the original bytes rather than re-marshaling the parsed
	// struct, so keys the model does not know about survive the copy.
	var doc bytes.Buffer
	if err := json.Indent(&doc, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format manifest: %w", err)
	}

	name := m.ProjectName
	if name == "" {
		name = "unknown"
	}
	if err := s.store.Create(ctx, name, doc.Bytes()); err != nil {
		return nil, err
	}

	s.events.Logf("Created project '%s' from manifest", m.ProjectName)
	return &m, nil
}

// CreateProject registers a project built from individual fields, filling
// in the defaults the dashboard create form promises.
func (s *PortfolioServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*manifest.Manifest, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	today := time.Now().Format("2006-01-02")

	status := req.Status
	if status == "" {
		status = "planning"
	}
	lead := req.LeadStrategist
	if lead == "" {
		lead = "Dashboard User"
	}
	architect := req.LeadArchitect
	if architect == "" {
		architect = "Foundry OS"
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Project created via dashboard on %s", today)
	}
	team := req.Team
	if len(team) == 0 {
		if tmpl, ok := s.cfg.Template(req.Type); ok {
			team = tmpl.Agents
		}
	}

	m := manifest.Manifest{
		ProjectName:    req.Name,
		ProjectType:    req.Type,
		Status:         status,
		LeadStrategist: lead,
		LeadArchitect:  architect,
		Team:           team,
		Description:    description,
		Metrics: manifest.Metrics{
			Users:     req.Users,
			StartDate: today,
		},
		Tasks: manifest.Tasks{
			Active:    []manifest.Task{},
			Completed: []manifest.Task{},
		},
	}
	if req.Revenue != "" {
		m.Metrics.Revenue = manifest.NewRevenue(req.Revenue)
	}

	doc, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := s.store.Create(ctx, m.ProjectName, doc); err != nil {
		return nil, err
	}

	s.events.Logf("Created project '%s'", m.ProjectName)
	return &m, nil
}

// Ensure PortfolioServiceImpl implements the interface
var _ primary.PortfolioService = (*PortfolioServiceImpl)(nil)
