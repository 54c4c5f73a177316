package manifest

import (
	"testing"
	"time"
)

func stored(m Manifest) Stored {
	return Stored{Manifest: m, Path: "projects/" + Slug(m.ProjectName) + ".json", ModTime: time.Now()}
}

// ============================================================================
// Aggregate Tests
// ============================================================================

func TestAggregate_EmptySet(t *testing.T) {
	s := Aggregate(nil)

	if s.TotalProjects != 0 {
		t.Errorf("expected 0 total projects, got %d", s.TotalProjects)
	}
	if len(s.StatusDistribution) != 0 {
		t.Errorf("expected empty status distribution, got %v", s.StatusDistribution)
	}
	if len(s.AgentWorkload) != 0 {
		t.Errorf("expected empty agent workload, got %v", s.AgentWorkload)
	}
	if len(s.TaskDistribution) != 0 {
		t.Errorf("expected empty task distribution, got %v", s.TaskDistribution)
	}
	if s.TotalRevenue != 0 || s.AvgRevenue() != 0 {
		t.Error("expected zero revenue totals")
	}
}

func TestAggregate_EndToEnd(t *testing.T) {
	projects := []Stored{
		stored(Manifest{
			ProjectName: "Acme",
			Status:      "production",
			Metrics:     Metrics{Revenue: NewRevenue("$1,000")},
			Team:        []string{"alice"},
		}),
		stored(Manifest{
			ProjectName: "Beta",
			Status:      "archived",
			Metrics:     Metrics{Revenue: NewRevenue("$500")},
			Team:        []string{"alice"},
		}),
	}

	s := Aggregate(projects)

	if s.TotalProjects != 2 {
		t.Errorf("expected 2 total projects, got %d", s.TotalProjects)
	}
	if s.ActiveProjects != 1 {
		t.Errorf("expected 1 active project, got %d", s.ActiveProjects)
	}
	if s.TotalRevenue != 1500.0 {
		t.Errorf("expected total revenue 1500.0, got %v", s.TotalRevenue)
	}
	if s.AgentWorkload["alice"] != 1 {
		t.Errorf("archived project must not count toward workload, got %v", s.AgentWorkload)
	}
	if s.StatusDistribution[StatusProduction] != 1 || s.StatusDistribution[StatusArchived] != 1 {
		t.Errorf("unexpected status distribution %v", s.StatusDistribution)
	}
}

func TestAggregate_ActivePlusTerminalEqualsTotal(t *testing.T) {
	projects := []Stored{
		stored(Manifest{ProjectName: "A", Status: "planning"}),
		stored(Manifest{ProjectName: "B", Status: "archived"}),
		stored(Manifest{ProjectName: "C", Status: "completed"}),
		stored(Manifest{ProjectName: "D", Status: "pilot"}),
		stored(Manifest{ProjectName: "E"}),
	}

	s := Aggregate(projects)

	terminal := s.StatusDistribution[StatusArchived] + s.StatusDistribution[StatusCompleted]
	if s.ActiveProjects+terminal != s.TotalProjects {
		t.Errorf("active (%d) + terminal (%d) != total (%d)",
			s.ActiveProjects, terminal, s.TotalProjects)
	}
	// pilot and the missing status both land in the unknown bucket
	if s.StatusDistribution[StatusUnknown] != 2 {
		t.Errorf("expected 2 unknown-status projects, got %d", s.StatusDistribution[StatusUnknown])
	}
}

func TestAggregate_RevenueProjects(t *testing.T) {
	projects := []Stored{
		stored(Manifest{ProjectName: "Paid", Status: "production",
			Metrics: Metrics{Revenue: NewRevenue("$250"), Users: 40}}),
		stored(Manifest{ProjectName: "Free", Status: "development"}),
	}

	s := Aggregate(projects)

	if len(s.RevenueProjects) != 1 {
		t.Fatalf("expected 1 revenue project, got %d", len(s.RevenueProjects))
	}
	entry := s.RevenueProjects[0]
	if entry.Name != "Paid" || entry.Revenue != 250.0 || entry.Status != StatusProduction || entry.Users != 40 {
		t.Errorf("unexpected revenue entry %+v", entry)
	}
	if s.AvgRevenue() != 250.0 {
		t.Errorf("expected avg revenue 250.0, got %v", s.AvgRevenue())
	}
}

func TestAggregate_TaskDistribution(t *testing.T) {
	projects := []Stored{
		stored(Manifest{
			ProjectName: "Live",
			Status:      "development",
			Tasks: Tasks{Active: []Task{
				{Description: "a", Priority: "high"},
				{Description: "b"},
				{Description: "c", Priority: "weird"},
			}},
		}),
		stored(Manifest{
			ProjectName: "Done",
			Status:      "completed",
			Tasks:       Tasks{Active: []Task{{Description: "ignored", Priority: "critical"}}},
		}),
	}

	s := Aggregate(projects)

	if s.TaskDistribution[PriorityHigh] != 1 {
		t.Errorf("expected 1 high task, got %d", s.TaskDistribution[PriorityHigh])
	}
	if s.TaskDistribution[PriorityMedium] != 1 {
		t.Errorf("missing priority must default to medium, got %v", s.TaskDistribution)
	}
	if s.TaskDistribution[PriorityUnknown] != 1 {
		t.Errorf("unrecognized priority must count as unknown, got %v", s.TaskDistribution)
	}
	if s.TaskDistribution[PriorityCritical] != 0 {
		t.Error("tasks of completed projects must be excluded")
	}
}

func TestAggregate_GrowthPointsSortedByDate(t *testing.T) {
	projects := []Stored{
		stored(Manifest{ProjectName: "Newer", Status: "production",
			Metrics: Metrics{StartDate: "2026-03-01", Revenue: NewRevenue("$20")}}),
		stored(Manifest{ProjectName: "Older", Status: "production",
			Metrics: Metrics{StartDate: "2025-11-15", Revenue: NewRevenue("$10")}}),
		stored(Manifest{ProjectName: "BadDate", Status: "production",
			Metrics: Metrics{StartDate: "soon"}}),
	}

	s := Aggregate(projects)

	if len(s.GrowthPoints) != 2 {
		t.Fatalf("expected 2 growth points, got %d", len(s.GrowthPoints))
	}
	if s.GrowthPoints[0].Project != "Older" || s.GrowthPoints[1].Project != "Newer" {
		t.Errorf("growth points out of order: %+v", s.GrowthPoints)
	}
}

// ============================================================================
// Sort and Lookup Tests
// ============================================================================

func TestSortByName_CaseSensitiveLexical(t *testing.T) {
	projects := []Stored{
		stored(Manifest{ProjectName: "Zeta"}),
		stored(Manifest{ProjectName: "alpha"}),
		stored(Manifest{ProjectName: "Beta"}),
	}

	SortByName(projects)

	want := []string{"Beta", "Zeta", "alpha"}
	for i, name := range want {
		if projects[i].Manifest.ProjectName != name {
			t.Fatalf("expected order %v, got %q at %d", want, projects[i].Manifest.ProjectName, i)
		}
	}
}

func TestFindByName_CaseInsensitive(t *testing.T) {
	projects := []Stored{
		stored(Manifest{ProjectName: "Acme"}),
		stored(Manifest{ProjectName: "Beta"}),
	}

	found, ok := FindByName(projects, "acme")
	if !ok {
		t.Fatal("expected to find project")
	}
	if found.Manifest.ProjectName != "Acme" {
		t.Errorf("expected 'Acme', got %q", found.Manifest.ProjectName)
	}

	if _, ok := FindByName(projects, "missing"); ok {
		t.Error("expected lookup miss")
	}
}

func TestFindByName_FirstMatchWins(t *testing.T) {
	projects := []Stored{
		{Manifest: Manifest{ProjectName: "Dup"}, Path: "projects/dup_1.json"},
		{Manifest: Manifest{ProjectName: "dup"}, Path: "projects/dup_2.json"},
	}

	found, ok := FindByName(projects, "DUP")
	if !ok {
		t.Fatal("expected to find project")
	}
	if found.Path != "projects/dup_1.json" {
		t.Errorf("expected first match, got %q", found.Path)
	}
}
