package manifest

import "time"

// Stored is a manifest plus the metadata attached during discovery: the
// originating file path and its last-modified time. The semantic fields
// of the manifest itself are never mutated by a scan.
type Stored struct {
	Manifest Manifest
	Path     string
	ModTime  time.Time
}

// LastModified renders the file's modification time as ISO 8601.
func (s Stored) LastModified() string {
	return s.ModTime.Format(time.RFC3339)
}

// DiagnosticKind distinguishes why a file was excluded from a scan.
type DiagnosticKind string

const (
	// DiagInvalidJSON marks a file that could not be read or parsed.
	DiagInvalidJSON DiagnosticKind = "invalid_json"
	// DiagSchemaViolation marks a file that parsed but failed schema
	// validation.
	DiagSchemaViolation DiagnosticKind = "schema_violation"
)

// Diagnostic records one skipped file. A diagnostic never aborts a scan;
// it is collected alongside the manifests that did parse.
type Diagnostic struct {
	File string
	Kind DiagnosticKind
	Err  error
}

// Message renders the diagnostic in the event-log wording.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case DiagSchemaViolation:
		return "ERROR: Invalid manifest schema in " + d.File + ": " + d.Err.Error()
	default:
		return "ERROR: Invalid JSON in " + d.File + ": " + d.Err.Error()
	}
}
