package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/foundryos/foundry/internal/ports/primary"
)

// AssignmentAdapter is a thin adapter that translates CLI operations to
// AssignmentService calls.
type AssignmentAdapter struct {
	service primary.AssignmentService
	out     io.Writer
}

// NewAssignmentAdapter creates a new AssignmentAdapter with the given service.
func NewAssignmentAdapter(service primary.AssignmentService, out io.Writer) *AssignmentAdapter {
	return &AssignmentAdapter{
		service: service,
		out:     out,
	}
}

// Assign hands a task to an agent on a project and prints the receipt.
// An unknown agent is reported as a warning, never a failure.
func (a *AssignmentAdapter) Assign(ctx context.Context, task, project, agent string) error {
	resp, err := a.service.AssignTask(ctx, primary.AssignTaskRequest{
		Task:    task,
		Project: project,
		Agent:   agent,
	})
	if err != nil {
		return err
	}

	if resp.Warning != "" {
		caution.Fprintf(a.out, "⚠️  Warning: %s\n", resp.Warning)
	}

	success.Fprintf(a.out, "✅ Task assigned [%s]\n", resp.Assignment.ID)
	fmt.Fprintf(a.out, "📋 Task: %s\n", resp.Assignment.Task)
	fmt.Fprintf(a.out, "👤 Agent: %s\n", resp.Assignment.Agent)
	fmt.Fprintf(a.out, "📁 Project: %s\n", resp.Assignment.Project)

	return nil
}
