package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/ports/secondary"
)

// EventLog implements secondary.EventLog by appending to a daily file
// under the hub's logs directory (foundry_YYYYMMDD.log). Write failures
// are swallowed: bookkeeping must never fail the operation that produced
// the message.
type EventLog struct {
	hub config.Hub
	mu  sync.Mutex
}

// NewEventLog creates an event log rooted at the hub's logs directory.
func NewEventLog(hub config.Hub) *EventLog {
	return &EventLog{hub: hub}
}

// Log appends a message to today's log file.
func (l *EventLog) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.hub.LogsDir(), 0755); err != nil {
		return
	}

	name := fmt.Sprintf("foundry_%s.log", time.Now().Format("20060102"))
	file, err := os.OpenFile(filepath.Join(l.hub.LogsDir(), name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	defer file.Close()

	fmt.Fprintf(file, "[%s] %s\n", time.Now().Format(time.RFC3339), message)
}

// Logf appends a formatted message to today's log file.
func (l *EventLog) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Ensure EventLog implements the interface
var _ secondary.EventLog = (*EventLog)(nil)
