package manifest

// Status is the closed set of project lifecycle values. Anything outside
// the known set aggregates under StatusUnknown.
type Status string

const (
	StatusPlanning    Status = "planning"
	StatusDevelopment Status = "development"
	StatusTesting     Status = "testing"
	StatusProduction  Status = "production"
	StatusMaintenance Status = "maintenance"
	StatusActive      Status = "active"
	StatusArchived    Status = "archived"
	StatusCompleted   Status = "completed"
	StatusUnknown     Status = "unknown"
)

// StatusOrder is the display order for status breakdowns.
var StatusOrder = []Status{
	StatusPlanning,
	StatusDevelopment,
	StatusTesting,
	StatusProduction,
	StatusMaintenance,
	StatusActive,
	StatusArchived,
	StatusCompleted,
	StatusUnknown,
}

// ParseStatus maps a raw status field to the closed enumeration.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPlanning, StatusDevelopment, StatusTesting, StatusProduction,
		StatusMaintenance, StatusActive, StatusArchived, StatusCompleted:
		return Status(s)
	default:
		return StatusUnknown
	}
}

// Terminal reports whether the status excludes a project from active
// counts, workload, and task breakdowns.
func (s Status) Terminal() bool {
	return s == StatusArchived || s == StatusCompleted
}

// String returns the status value.
func (s Status) String() string {
	return string(s)
}

// Priority is the closed set of task priority values.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityUnknown  Priority = "unknown"
)

// PriorityOrder is the display order for priority breakdowns.
var PriorityOrder = []Priority{
	PriorityCritical,
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
	PriorityUnknown,
}

// ParsePriority maps a raw priority field to the closed enumeration.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityUnknown
	}
}

// String returns the priority value.
func (p Priority) String() string {
	return string(p)
}
