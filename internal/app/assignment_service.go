package app

import (
	"context"
	"fmt"
	"time"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/primary"
	"github.com/foundryos/foundry/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface.
type AssignmentServiceImpl struct {
	store       secondary.ManifestStore
	assignments secondary.AssignmentStore
	cfg         *config.Config
	events      secondary.EventLog
}

// NewAssignmentService creates a new AssignmentService with injected dependencies.
func NewAssignmentService(store secondary.ManifestStore, assignments secondary.AssignmentStore, cfg *config.Config, events secondary.EventLog) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{
		store:       store,
		assignments: assignments,
		cfg:         cfg,
		events:      events,
	}
}

// AssignTask records a task assignment for a project. An agent that is
// neither registered nor on the project team yields a warning in the
// response, never an error.
func (s *AssignmentServiceImpl) AssignTask(ctx context.Context, req primary.AssignTaskRequest) (*primary.AssignTaskResponse, error) {
	projects, _, err := s.store.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects: %w", err)
	}

	found, ok := manifest.FindByName(projects, req.Project)
	if !ok {
		return nil, fmt.Errorf("project '%s': %w", req.Project, primary.ErrProjectNotFound)
	}

	var warning string
	if !s.cfg.AgentRegistered(req.Agent) && !onTeam(found.Manifest.Team, req.Agent) {
		warning = fmt.Sprintf("Agent '%s' not registered or in project team", req.Agent)
	}

	now := time.Now()
	record := &secondary.AssignmentRecord{
		ID:        fmt.Sprintf("task_%s", now.Format("20060102_150405")),
		Task:      req.Task,
		Project:   req.Project,
		Agent:     req.Agent,
		Status:    "assigned",
		CreatedAt: now.Format(time.RFC3339),
	}

	if err := s.assignments.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	s.events.Logf("Assigned task '%s' to %s for project %s", req.Task, req.Agent, req.Project)

	return &primary.AssignTaskResponse{
		Assignment: primary.Assignment{
			ID:        record.ID,
			Task:      record.Task,
			Project:   record.Project,
			Agent:     record.Agent,
			Status:    record.Status,
			CreatedAt: record.CreatedAt,
		},
		Warning: warning,
	}, nil
}

// Helper methods

func onTeam(team []string, agent string) bool {
	for _, member := range team {
		if member == agent {
			return true
		}
	}
	return false
}

// Ensure AssignmentServiceImpl implements the interface
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
