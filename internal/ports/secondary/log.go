package secondary

// EventLog defines the interface for appending to the hub's daily event log.
// Logging never fails an operation: implementations swallow write errors.
type EventLog interface {
	// Log appends a message to today's log file.
	Log(message string)

	// Logf appends a formatted message to today's log file.
	Logf(format string, args ...any)
}
