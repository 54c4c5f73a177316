package primary

import "context"

// AssignmentService defines the primary port for task assignment operations.
type AssignmentService interface {
	// AssignTask records a task assignment for a project. An unknown
	// agent produces a warning in the response, not an error.
	AssignTask(ctx context.Context, req AssignTaskRequest) (*AssignTaskResponse, error)
}

// AssignTaskRequest contains parameters for assigning a task.
type AssignTaskRequest struct {
	Task    string
	Project string
	Agent   string
}

// AssignTaskResponse contains the result of assigning a task.
type AssignTaskResponse struct {
	Assignment Assignment
	Warning    string // Non-empty when the agent is neither registered nor on the project team
}

// Assignment represents a task assignment at the port boundary.
type Assignment struct {
	ID        string
	Task      string
	Project   string
	Agent     string
	Status    string
	CreatedAt string
}
