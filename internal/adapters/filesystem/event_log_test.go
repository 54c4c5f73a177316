package filesystem_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/foundryos/foundry/internal/adapters/filesystem"
	"github.com/foundryos/foundry/internal/config"
)

func TestEventLog_AppendsToDailyFile(t *testing.T) {
	hub := config.Hub{Dir: t.TempDir()}
	log := filesystem.NewEventLog(hub)

	log.Log("Created project 'Acme' from manifest")
	log.Logf("Assigned task '%s' to %s for project %s", "Audit SEO", "seo_specialist", "Acme")

	name := fmt.Sprintf("foundry_%s.log", time.Now().Format("20060102"))
	data, err := os.ReadFile(filepath.Join(hub.LogsDir(), name))
	if err != nil {
		t.Fatalf("expected daily log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Created project 'Acme' from manifest") {
		t.Errorf("unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Assigned task 'Audit SEO' to seo_specialist for project Acme") {
		t.Errorf("unexpected second line: %s", lines[1])
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[") {
			t.Errorf("expected timestamped line, got %s", line)
		}
	}
}

func TestEventLog_SwallowsWriteFailures(t *testing.T) {
	// Point the hub at a path that cannot be a directory.
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, []byte("file"), 0644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}

	log := filesystem.NewEventLog(config.Hub{Dir: filepath.Join(blocked, "hub")})
	// Must not panic or return anything.
	log.Log("this message is dropped")
	log.Logf("so is %s", "this one")
}
