package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/primary"
)

func TestSortProjects(t *testing.T) {
	base := []manifest.Stored{
		{Manifest: manifest.Manifest{ProjectName: "Zeta", Status: "planning", Metrics: manifest.Metrics{StartDate: "2025-03-01", Revenue: manifest.NewRevenue("$100")}}},
		{Manifest: manifest.Manifest{ProjectName: "Alpha", Status: "production", Metrics: manifest.Metrics{StartDate: "2025-01-01", Revenue: manifest.NewRevenue("$900")}}},
		{Manifest: manifest.Manifest{ProjectName: "Mid", Status: "development", Metrics: manifest.Metrics{StartDate: "2025-02-01", Revenue: manifest.NewRevenue("$500")}}},
	}

	tests := []struct {
		name string
		mode sortMode
		want []string
	}{
		{"by name", sortByName, []string{"Alpha", "Mid", "Zeta"}},
		{"by revenue descending", sortByRevenue, []string{"Alpha", "Mid", "Zeta"}},
		{"by status", sortByStatus, []string{"Mid", "Zeta", "Alpha"}},
		{"by created", sortByCreated, []string{"Alpha", "Mid", "Zeta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := append([]manifest.Stored(nil), base...)
			sortProjects(projects, tt.mode)
			for i, want := range tt.want {
				if got := projects[i].Manifest.ProjectName; got != want {
					t.Errorf("projects[%d] = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestFilteredProjects(t *testing.T) {
	app := New(nil)
	app.snapshot = &primary.EmpireStatus{
		Projects: []manifest.Stored{
			{Manifest: manifest.Manifest{ProjectName: "One", ProjectType: "SaaS", Status: "production"}},
			{Manifest: manifest.Manifest{ProjectName: "Two", ProjectType: "SaaS", Status: "planning"}},
			{Manifest: manifest.Manifest{ProjectName: "Three", ProjectType: "bot"}},
		},
	}

	app.statusFilter = "production"
	got := app.filteredProjects()
	if len(got) != 1 || got[0].Manifest.ProjectName != "One" {
		t.Errorf("status filter: got %d projects", len(got))
	}

	// A missing status is addressable as "unknown".
	app.statusFilter = "unknown"
	got = app.filteredProjects()
	if len(got) != 1 || got[0].Manifest.ProjectName != "Three" {
		t.Errorf("unknown filter: got %d projects", len(got))
	}

	app.statusFilter = filterAll
	app.typeFilter = "SaaS"
	got = app.filteredProjects()
	if len(got) != 2 {
		t.Errorf("type filter: got %d projects, want 2", len(got))
	}
}

func TestFilterChoices(t *testing.T) {
	app := New(nil)
	app.snapshot = &primary.EmpireStatus{
		Projects: []manifest.Stored{
			{Manifest: manifest.Manifest{ProjectName: "One", Status: "production"}},
			{Manifest: manifest.Manifest{ProjectName: "Two", Status: "planning"}},
			{Manifest: manifest.Manifest{ProjectName: "Three", Status: "production"}},
		},
	}

	choices := app.statusFilterChoices()
	want := []string{"All", "planning", "production"}
	if len(choices) != len(want) {
		t.Fatalf("choices = %v, want %v", choices, want)
	}
	for i := range want {
		if choices[i] != want[i] {
			t.Errorf("choices[%d] = %q, want %q", i, choices[i], want[i])
		}
	}

	if got := nextChoice(choices, "All"); got != "planning" {
		t.Errorf("nextChoice after All = %q", got)
	}
	if got := nextChoice(choices, "production"); got != "All" {
		t.Errorf("nextChoice wraps to %q, want All", got)
	}
	if got := nextChoice(choices, "stale-value"); got != "All" {
		t.Errorf("nextChoice resets to %q, want All", got)
	}
}

func TestUpdate_KeysCycleFiltersAndSort(t *testing.T) {
	app := New(nil)
	app.snapshot = &primary.EmpireStatus{
		Projects: []manifest.Stored{
			{Manifest: manifest.Manifest{ProjectName: "One", Status: "production"}},
		},
	}

	press := func(key string) {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		app = model.(*App)
	}

	press("f")
	if app.statusFilter != "production" {
		t.Errorf("statusFilter = %q after f, want production", app.statusFilter)
	}
	press("f")
	if app.statusFilter != filterAll {
		t.Errorf("statusFilter = %q after second f, want All", app.statusFilter)
	}

	press("s")
	if app.sortBy != sortByRevenue {
		t.Errorf("sortBy = %v after s, want revenue", app.sortBy)
	}

	press("n")
	if app.state != stateCreate {
		t.Error("n should open the create form")
	}

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	if app.state != stateOverview {
		t.Error("esc should return to the overview")
	}
}

func TestUpdate_SnapshotMessage(t *testing.T) {
	app := New(nil)

	model, cmd := app.Update(snapshotMsg{
		status: &primary.EmpireStatus{
			Projects: []manifest.Stored{{Manifest: manifest.Manifest{ProjectName: "One"}}},
		},
		at: time.Now(),
	})
	app = model.(*App)

	if app.snapshot == nil || len(app.snapshot.Projects) != 1 {
		t.Fatal("snapshot not stored")
	}
	if len(app.portfolio.Items()) != 1 {
		t.Errorf("portfolio has %d items, want 1", len(app.portfolio.Items()))
	}
	if cmd == nil {
		t.Error("snapshot handling should schedule the next refresh")
	}
}

func TestRenderCard(t *testing.T) {
	stored := manifest.Stored{Manifest: manifest.Manifest{
		ProjectName:    "AI Pizza Pro",
		ProjectType:    "restaurant_bot",
		Status:         "development",
		LeadStrategist: "Claude",
		Description:    "WhatsApp ordering bot",
		Team:           []string{"bot_master", "qa_specialist"},
		LiveURL:        "https://pizza.example.com",
		CoreRepo:       "github.com/acme/pizza",
		Metrics: manifest.Metrics{
			Revenue: manifest.NewRevenue("$1,500/mo"),
			Users:   1200,
		},
		Tasks: manifest.Tasks{
			Active: []manifest.Task{
				{Description: "Fix checkout", AssignedTo: "bot_master", Priority: "critical"},
				{Description: "Untagged task"},
				{Description: "Odd priority", Priority: "urgent"},
				{Description: "Fourth task", Priority: "low"},
				{Description: "Fifth task", Priority: "low"},
			},
			Completed: []manifest.Task{{Description: "Ship menu"}},
		},
	}}

	card := renderCard(stored)

	want := []string{
		"🚀 AI Pizza Pro",
		"Type: restaurant_bot",
		"WhatsApp ordering bot",
		"Status: 🔨 Development",
		"Lead: Claude",
		"Revenue: $1,500",
		"Users: 1,200",
		"🌐 Live Site: https://pizza.example.com",
		"📁 Repository: github.com/acme/pizza",
		"Team: bot_master, qa_specialist",
		"Active Tasks (5):",
		"🔴 Fix checkout → bot_master",
		// A task without a priority counts as medium.
		"🟡 Untagged task → Unassigned",
		// An unrecognized priority falls back to the white circle.
		"⚪ Odd priority → Unassigned",
		"... and 2 more tasks",
		"✅ Completed: 1 tasks",
	}
	for _, w := range want {
		if !strings.Contains(card, w) {
			t.Errorf("card missing %q\ncard:\n%s", w, card)
		}
	}

	if strings.Contains(card, "Fourth task") || strings.Contains(card, "Fifth task") {
		t.Error("card should cap active tasks at three")
	}
}

func TestRenderCard_MissingFields(t *testing.T) {
	card := renderCard(manifest.Stored{})

	want := []string{
		"🚀 Unknown Project",
		"Type: Unknown",
		"Status: ❓ Unknown",
		"Lead: Unknown",
	}
	for _, w := range want {
		if !strings.Contains(card, w) {
			t.Errorf("card missing %q\ncard:\n%s", w, card)
		}
	}
	if strings.Contains(card, "Revenue:") {
		t.Error("card should omit revenue when none is recorded")
	}
	if strings.Contains(card, "Active Tasks") {
		t.Error("card should omit the task section when there are none")
	}
}

func TestRenderBar(t *testing.T) {
	full := renderBar("Production", 4, 4, "4", neutralColor)
	if !strings.Contains(full, strings.Repeat("█", 16)) {
		t.Errorf("full bar not rendered: %q", full)
	}

	empty := renderBar("Testing", 0, 4, "0", neutralColor)
	if strings.Contains(empty, "█") {
		t.Errorf("zero bar should have no fill: %q", empty)
	}
	if !strings.Contains(empty, "░") {
		t.Errorf("zero bar should render the empty track: %q", empty)
	}

	// A nonzero count always shows at least one cell.
	sliver := renderBar("Planning", 1, 100, "1", neutralColor)
	if !strings.Contains(sliver, "█") {
		t.Errorf("small count should still be visible: %q", sliver)
	}
}

func TestProjectItem(t *testing.T) {
	item := projectItem{stored: manifest.Stored{Manifest: manifest.Manifest{
		ProjectName: "Acme",
		ProjectType: "SaaS",
		Status:      "production",
		Metrics:     manifest.Metrics{Revenue: manifest.NewRevenue("$2,000")},
	}}}

	if got := item.Title(); got != "🚀 Acme" {
		t.Errorf("Title() = %q", got)
	}
	desc := item.Description()
	for _, w := range []string{"SaaS", "🚀 Production", "$2,000"} {
		if !strings.Contains(desc, w) {
			t.Errorf("Description() = %q, missing %q", desc, w)
		}
	}
	if got := item.FilterValue(); got != "Acme" {
		t.Errorf("FilterValue() = %q", got)
	}
}

func TestCreateForm_BuildRequest(t *testing.T) {
	form := newCreateForm()

	if _, err := form.buildRequest(); err == nil {
		t.Fatal("expected error for empty project name")
	}

	form.name.SetValue("  My Startup  ")
	form.typeIdx = 1   // restaurant_bot
	form.statusIdx = 3 // production

	req, err := form.buildRequest()
	if err != nil {
		t.Fatalf("buildRequest() error = %v", err)
	}
	if req.Name != "My Startup" {
		t.Errorf("Name = %q, want trimmed value", req.Name)
	}
	if req.Type != "restaurant_bot" {
		t.Errorf("Type = %q", req.Type)
	}
	if req.Status != "production" {
		t.Errorf("Status = %q", req.Status)
	}
}

func TestCreateForm_FocusCycle(t *testing.T) {
	form := newCreateForm()
	if form.focus != formFocusName {
		t.Fatalf("initial focus = %v", form.focus)
	}

	form.advance()
	form.advance()
	form.advance()
	if form.focus != formFocusSubmit {
		t.Errorf("focus after three advances = %v, want submit", form.focus)
	}
	form.advance()
	if form.focus != formFocusName {
		t.Errorf("focus should wrap to name, got %v", form.focus)
	}

	form.retreat()
	if form.focus != formFocusSubmit {
		t.Errorf("retreat should wrap to submit, got %v", form.focus)
	}
}

func TestCreateForm_ChoiceCycling(t *testing.T) {
	form := newCreateForm()
	form.setFocus(formFocusType)

	form.cycleChoice(1)
	if form.typeIdx != 1 {
		t.Errorf("typeIdx = %d after cycle, want 1", form.typeIdx)
	}
	form.cycleChoice(-1)
	form.cycleChoice(-1)
	if form.typeIdx != len(formTypeChoices)-1 {
		t.Errorf("typeIdx = %d, want wrap to last", form.typeIdx)
	}
}

func TestStatusAndPriorityMarks(t *testing.T) {
	if got := statusMark("production"); got != "🚀" {
		t.Errorf("statusMark(production) = %q", got)
	}
	if got := statusMark("archived"); got != "❓" {
		t.Errorf("statusMark(archived) = %q, want fallback", got)
	}
	if got := statusMark(""); got != "❓" {
		t.Errorf("statusMark(empty) = %q, want fallback", got)
	}

	if got := priorityMark(manifest.Task{Priority: "critical"}); got != "🔴" {
		t.Errorf("priorityMark(critical) = %q", got)
	}
	if got := priorityMark(manifest.Task{}); got != "🟡" {
		t.Errorf("priorityMark(missing) = %q, want medium marker", got)
	}
	if got := priorityMark(manifest.Task{Priority: "urgent"}); got != "⚪" {
		t.Errorf("priorityMark(urgent) = %q, want fallback", got)
	}
}

func TestPadLabel(t *testing.T) {
	if got := padLabel("abc", 6); got != "abc   " {
		t.Errorf("padLabel short = %q", got)
	}
	if got := padLabel("abcdefgh", 6); got != "abcde…" {
		t.Errorf("padLabel long = %q", got)
	}
}
