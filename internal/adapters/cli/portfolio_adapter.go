// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/primary"
)

var (
	heading = color.New(color.Bold)
	success = color.New(color.FgGreen)
	caution = color.New(color.FgYellow)
)

// statusMarks maps project statuses to their report glyphs. Statuses outside
// the map render as unclassified.
var statusMarks = map[manifest.Status]string{
	manifest.StatusPlanning:    "📋",
	manifest.StatusDevelopment: "🔨",
	manifest.StatusTesting:     "🧪",
	manifest.StatusProduction:  "🚀",
	manifest.StatusMaintenance: "🔧",
	manifest.StatusArchived:    "📦",
}

// taskMarks maps raw task priorities to their report glyphs.
var taskMarks = map[string]string{
	"high":   "🔥",
	"medium": "⚡",
	"low":    "📌",
}

func statusMark(status string) string {
	if mark, ok := statusMarks[manifest.Status(status)]; ok {
		return mark
	}
	return "❓"
}

func taskMark(priority string) string {
	if mark, ok := taskMarks[priority]; ok {
		return mark
	}
	return "📌"
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PortfolioAdapter is a thin adapter that translates CLI operations to
// PortfolioService calls. It depends only on the PortfolioService interface,
// enabling easy testing with mocks.
type PortfolioAdapter struct {
	service primary.PortfolioService
	out     io.Writer
}

// NewPortfolioAdapter creates a new PortfolioAdapter with the given service.
func NewPortfolioAdapter(service primary.PortfolioService, out io.Writer) *PortfolioAdapter {
	return &PortfolioAdapter{
		service: service,
		out:     out,
	}
}

// Status renders the empire status report. With summaryOnly the per-project
// details are skipped; with showAll each project's active tasks are included.
func (a *PortfolioAdapter) Status(ctx context.Context, showAll, summaryOnly bool) error {
	status, err := a.service.EmpireStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get empire status: %w", err)
	}
	summary := status.Summary

	heading.Fprintln(a.out, "\n🏭 AI EMPIRE STATUS REPORT")
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
	fmt.Fprintf(a.out, "📊 Total Projects: %d\n", summary.TotalProjects)
	fmt.Fprintf(a.out, "🔄 Active Projects: %d\n", summary.ActiveProjects)

	if len(summary.RevenueProjects) > 0 {
		fmt.Fprintf(a.out, "💰 Total Revenue: $%s\n", humanize.FormatFloat("#,###.##", summary.TotalRevenue))
	}

	if len(summary.StatusDistribution) > 0 {
		fmt.Fprintln(a.out, "\n📈 Project Status Distribution:")
		for _, s := range manifest.StatusOrder {
			if count := summary.StatusDistribution[s]; count > 0 {
				fmt.Fprintf(a.out, "   %s %s: %d\n", statusMark(s.String()), titleCase(s.String()), count)
			}
		}
	}

	if len(summary.AgentWorkload) > 0 {
		fmt.Fprintln(a.out, "\n👥 Agent Workload:")
		agents := make([]string, 0, len(summary.AgentWorkload))
		for agent := range summary.AgentWorkload {
			agents = append(agents, agent)
		}
		sort.Strings(agents)
		for _, agent := range agents {
			fmt.Fprintf(a.out, "   🤖 %s: %d project(s)\n", agent, summary.AgentWorkload[agent])
		}
	}

	if summaryOnly {
		return nil
	}

	if len(status.Projects) == 0 {
		fmt.Fprintln(a.out, "\nNo projects found. Create your first project with:")
		fmt.Fprintln(a.out, "foundry new --manifest=./project.json")
		return nil
	}

	heading.Fprintf(a.out, "\n📋 PROJECT DETAILS (%d total)\n", len(status.Projects))
	fmt.Fprintln(a.out, strings.Repeat("=", 60))

	for _, p := range status.Projects {
		a.printProject(p.Manifest, showAll)
	}

	return nil
}

// Projects lists the discovered projects, one line each.
func (a *PortfolioAdapter) Projects(ctx context.Context) error {
	projects, _, err := a.service.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects found.")
		fmt.Fprintln(a.out, "Create a project manifest file in the projects directory.")
		return nil
	}

	heading.Fprintf(a.out, "\n📁 DISCOVERED PROJECTS (%d)\n", len(projects))
	fmt.Fprintln(a.out, strings.Repeat("=", 50))

	for _, p := range projects {
		m := p.Manifest
		fmt.Fprintf(a.out, "%s %s (%s)\n", statusMark(m.Status), m.ProjectName, orUnknown(m.ProjectType))
	}

	return nil
}

// New registers a project from a manifest file and prints the result.
func (a *PortfolioAdapter) New(ctx context.Context, manifestPath string) error {
	created, err := a.service.CreateFromManifest(ctx, manifestPath)
	if err != nil {
		return err
	}

	a.printCreated(created)
	return nil
}

// Create registers a project from inline fields and prints the result.
func (a *PortfolioAdapter) Create(ctx context.Context, req primary.CreateProjectRequest) error {
	created, err := a.service.CreateProject(ctx, req)
	if err != nil {
		return err
	}

	a.printCreated(created)
	return nil
}

// Helper methods

func (a *PortfolioAdapter) printCreated(m *manifest.Manifest) {
	success.Fprintf(a.out, "✅ Created project '%s'\n", m.ProjectName)
	fmt.Fprintf(a.out, "📋 Type: %s\n", m.ProjectType)
	fmt.Fprintf(a.out, "🎯 Status: %s\n", m.Status)
	if len(m.Team) > 0 {
		fmt.Fprintf(a.out, "👥 Team: %s\n", strings.Join(m.Team, ", "))
	}
}

func (a *PortfolioAdapter) printProject(m manifest.Manifest, showTasks bool) {
	fmt.Fprintf(a.out, "\n%s %s\n", statusMark(m.Status), m.ProjectName)
	fmt.Fprintf(a.out, "   Type: %s\n", orUnknown(m.ProjectType))
	fmt.Fprintf(a.out, "   Status: %s\n", orUnknown(m.Status))
	fmt.Fprintf(a.out, "   Lead: %s\n", orUnknown(m.LeadStrategist))

	if m.LiveURL != "" {
		fmt.Fprintf(a.out, "   🌐 Live: %s\n", m.LiveURL)
	}
	if m.Description != "" {
		fmt.Fprintf(a.out, "   📝 %s\n", m.Description)
	}

	// A numeric zero on the wire reads back as "0".
	if rev := m.RevenueDisplay(); rev != "" && rev != "0" {
		fmt.Fprintf(a.out, "   💰 Revenue: %s\n", rev)
	}
	if m.Metrics.Users > 0 {
		fmt.Fprintf(a.out, "   👥 Users: %d\n", m.Metrics.Users)
	}

	if showTasks && len(m.Tasks.Active) > 0 {
		fmt.Fprintf(a.out, "   📋 Active Tasks (%d):\n", len(m.Tasks.Active))
		active := m.Tasks.Active
		if len(active) > 3 {
			active = active[:3]
		}
		for _, t := range active {
			fmt.Fprintf(a.out, "      %s %s → %s\n", taskMark(t.Priority), t.Description, t.AssignedTo)
		}
	}
}
