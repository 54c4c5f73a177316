package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/version"
)

// Styles. The chart colors come from the browser dashboard's palette.
var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d4aa"))
	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	kpiBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1).MarginRight(1)
	kpiValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d4aa"))
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	flashStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
)

// statusEmoji carries the browser dashboard's status markers.
var statusEmoji = map[manifest.Status]string{
	manifest.StatusPlanning:    "📋",
	manifest.StatusDevelopment: "🔨",
	manifest.StatusTesting:     "🧪",
	manifest.StatusProduction:  "🚀",
	manifest.StatusActive:      "⚡",
	manifest.StatusMaintenance: "🔧",
}

// statusColors carries the browser dashboard's chart palette.
var statusColors = map[manifest.Status]lipgloss.Color{
	manifest.StatusProduction:  lipgloss.Color("#10b981"),
	manifest.StatusDevelopment: lipgloss.Color("#f59e0b"),
	manifest.StatusPlanning:    lipgloss.Color("#8b5cf6"),
	manifest.StatusActive:      lipgloss.Color("#3b82f6"),
	manifest.StatusMaintenance: lipgloss.Color("#6b7280"),
}

// priorityEmoji carries the browser dashboard's task markers.
var priorityEmoji = map[manifest.Priority]string{
	manifest.PriorityCritical: "🔴",
	manifest.PriorityHigh:     "🟠",
	manifest.PriorityMedium:   "🟡",
	manifest.PriorityLow:      "🟢",
}

var priorityColors = map[manifest.Priority]lipgloss.Color{
	manifest.PriorityCritical: lipgloss.Color("#ef4444"),
	manifest.PriorityHigh:     lipgloss.Color("#f59e0b"),
	manifest.PriorityMedium:   lipgloss.Color("#3b82f6"),
	manifest.PriorityLow:      lipgloss.Color("#10b981"),
}

const neutralColor = lipgloss.Color("#6b7280")

// statusMark resolves the status marker, falling back to the question mark
// for unrecognized values.
func statusMark(raw string) string {
	if e, ok := statusEmoji[manifest.ParseStatus(raw)]; ok {
		return e
	}
	return "❓"
}

// priorityMark resolves the task marker. A task without a priority counts
// as medium; an unrecognized priority falls back to the white circle.
func priorityMark(t manifest.Task) string {
	if e, ok := priorityEmoji[t.EffectivePriority()]; ok {
		return e
	}
	return "⚪"
}

func statusColor(s manifest.Status) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return neutralColor
}

func priorityColor(p manifest.Priority) lipgloss.Color {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return neutralColor
}

// projectItem adapts a stored manifest to the bubbles list.
type projectItem struct {
	stored manifest.Stored
}

func (i projectItem) Title() string {
	return "🚀 " + displayName(i.stored.Manifest)
}

func (i projectItem) Description() string {
	m := i.stored.Manifest
	desc := fmt.Sprintf("%s · %s %s", orUnknown(m.ProjectType), statusMark(m.Status), titleCase(filterKey(m.Status)))
	if rev := m.RevenueAmount(); rev > 0 {
		desc += " · $" + humanize.FormatFloat("#,###.", rev)
	}
	return desc
}

func (i projectItem) FilterValue() string {
	return i.stored.Manifest.ProjectName
}

// View renders the current screen.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	sections := []string{a.renderHeader()}

	if a.state == stateCreate {
		sections = append(sections, a.form.view())
		if a.flash != "" {
			sections = append(sections, flashStyle.Render(a.flash))
		}
		sections = append(sections, a.renderFooter())
		return strings.Join(sections, "\n")
	}

	if a.loadErr != "" {
		sections = append(sections, errorStyle.Render("⚠ "+a.loadErr))
	}

	switch {
	case a.snapshot == nil:
		sections = append(sections, dimStyle.Render("Loading empire data..."))
	case len(a.snapshot.Projects) == 0:
		sections = append(sections, warnStyle.Render("🎯 No projects found. Press n to create your first project!"))
	default:
		sections = append(sections,
			a.renderKPIs(),
			a.renderCharts(width),
			a.renderPortfolio(width),
		)
	}

	if a.flash != "" {
		sections = append(sections, flashStyle.Render(a.flash))
	}
	if note := a.renderDiagnostics(); note != "" {
		sections = append(sections, note)
	}
	sections = append(sections, a.renderFooter())

	return strings.Join(sections, "\n")
}

func (a *App) renderHeader() string {
	clock := "--:--:--"
	if !a.updatedAt.IsZero() {
		clock = a.updatedAt.Format("15:04:05")
	}
	title := headerStyle.Render("🏭 AI Empire Dashboard")
	subtitle := dimStyle.Render("Real-time business intelligence for your AI ventures")
	badge := dimStyle.Render(fmt.Sprintf("Last Updated %s   🟢 OPERATIONAL", clock))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, badge, "")
}

// renderKPIs draws the empire overview metric row.
func (a *App) renderKPIs() string {
	s := a.snapshot.Summary
	cells := []string{
		kpiCell("Total Projects", fmt.Sprintf("%d", s.TotalProjects)),
		kpiCell("Active Projects", fmt.Sprintf("%d", s.ActiveProjects)),
		kpiCell("Total Revenue", "$"+humanize.FormatFloat("#,###.", s.TotalRevenue)),
		kpiCell("Avg Revenue", "$"+humanize.FormatFloat("#,###.", s.AvgRevenue())),
		kpiCell("Total Users", humanize.Comma(int64(s.TotalUsers))),
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("📈 Empire Overview"),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
	)
}

func kpiCell(label, value string) string {
	return kpiBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		dimStyle.Render(label),
		kpiValueStyle.Render(value),
	))
}

// renderCharts draws the four analytics panels in two columns.
func (a *App) renderCharts(width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderRevenueChart(),
		"",
		a.renderWorkloadChart(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderStatusChart(),
		"",
		a.renderTaskChart(),
	)

	if width < 100 {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	half := width/2 - 3
	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(half).Render(left),
		panelStyle.Width(half).Render(right),
	)
}

// renderRevenueChart ranks revenue-bearing projects by revenue descending.
func (a *App) renderRevenueChart() string {
	title := chartTitleStyle.Render("💰 Revenue by Project")

	entries := append([]manifest.RevenueEntry(nil), a.snapshot.Summary.RevenueProjects...)
	if len(entries) == 0 {
		return title + "\n" + dimStyle.Render("💡 Add revenue metrics to your projects to see charts")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Revenue > entries[j].Revenue
	})

	maxRevenue := entries[0].Revenue
	rows := []string{title}
	for _, e := range entries {
		display := "$" + humanize.FormatFloat("#,###.", e.Revenue)
		rows = append(rows, renderBar(e.Name, e.Revenue, maxRevenue, display, statusColor(e.Status)))
	}
	return strings.Join(rows, "\n")
}

// renderStatusChart draws the status distribution, known statuses first.
func (a *App) renderStatusChart() string {
	dist := a.snapshot.Summary.StatusDistribution
	rows := []string{chartTitleStyle.Render("📊 Project Status")}
	most := maxCount(dist)
	for _, status := range manifest.StatusOrder {
		count := dist[status]
		if count == 0 {
			continue
		}
		rows = append(rows, renderBar(titleCase(status.String()), float64(count), float64(most), fmt.Sprintf("%d", count), statusColor(status)))
	}
	return strings.Join(rows, "\n")
}

// renderWorkloadChart draws projects per agent, sorted by agent name.
func (a *App) renderWorkloadChart() string {
	workload := a.snapshot.Summary.AgentWorkload
	rows := []string{chartTitleStyle.Render("👥 Agent Workload")}
	if len(workload) == 0 {
		return rows[0] + "\n" + dimStyle.Render("No agents assigned yet")
	}

	agents := make([]string, 0, len(workload))
	for agent := range workload {
		agents = append(agents, agent)
	}
	sort.Strings(agents)

	most := maxCount(workload)
	for _, agent := range agents {
		count := workload[agent]
		rows = append(rows, renderBar(agent, float64(count), float64(most), fmt.Sprintf("%d", count), lipgloss.Color("#3b82f6")))
	}
	return strings.Join(rows, "\n")
}

// renderTaskChart draws the active task priority breakdown. Every closed
// priority gets a row even at zero, so the scale reads at a glance.
func (a *App) renderTaskChart() string {
	dist := a.snapshot.Summary.TaskDistribution
	rows := []string{chartTitleStyle.Render("🎯 Task Priorities")}
	most := maxCount(dist)
	for _, priority := range manifest.PriorityOrder {
		count := dist[priority]
		if priority == manifest.PriorityUnknown && count == 0 {
			continue
		}
		rows = append(rows, renderBar(titleCase(priority.String()), float64(count), float64(most), fmt.Sprintf("%d", count), priorityColor(priority)))
	}
	return strings.Join(rows, "\n")
}

// renderBar draws one labeled proportional bar row.
func renderBar(label string, value, max float64, display string, color lipgloss.Color) string {
	const barWidth = 16
	filled := 0
	if max > 0 && value > 0 {
		filled = int(value / max * barWidth)
		if filled == 0 {
			filled = 1
		}
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%s %s %s", padLabel(label, 22), lipgloss.NewStyle().Foreground(color).Render(bar), display)
}

// renderPortfolio draws the filter line, the project list, and the
// selected project's card.
func (a *App) renderPortfolio(width int) string {
	filters := fmt.Sprintf("Status: %s   Type: %s   Sort: %s", a.statusFilter, a.typeFilter, a.sortBy)

	listView := a.portfolio.View()
	detail := dimStyle.Render("No project selected")
	if item, ok := a.portfolio.SelectedItem().(projectItem); ok {
		detail = renderCard(item.stored)
	}

	half := maxInt(30, width/2-3)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(half).Render(listView),
		panelStyle.Width(half).Render(detail),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("📋 Project Portfolio"),
		hintStyle.Render(filters),
		body,
	)
}

// renderCard renders the full project card for the detail panel.
func renderCard(p manifest.Stored) string {
	m := p.Manifest

	var b strings.Builder
	fmt.Fprintf(&b, "🚀 %s\n", displayName(m))
	fmt.Fprintf(&b, "Type: %s\n", orUnknown(m.ProjectType))
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n", m.Description)
	}
	fmt.Fprintf(&b, "Status: %s %s\n", statusMark(m.Status), titleCase(filterKey(m.Status)))
	fmt.Fprintf(&b, "Lead: %s\n", orUnknown(m.LeadStrategist))
	if rev := m.RevenueAmount(); rev > 0 {
		fmt.Fprintf(&b, "Revenue: $%s\n", humanize.FormatFloat("#,###.", rev))
	}
	if m.Metrics.Users > 0 {
		fmt.Fprintf(&b, "Users: %s\n", humanize.Comma(int64(m.Metrics.Users)))
	}
	if m.LiveURL != "" {
		fmt.Fprintf(&b, "🌐 Live Site: %s\n", m.LiveURL)
	}
	if m.CoreRepo != "" {
		fmt.Fprintf(&b, "📁 Repository: %s\n", m.CoreRepo)
	}
	if len(m.Team) > 0 {
		fmt.Fprintf(&b, "Team: %s\n", strings.Join(m.Team, ", "))
	}

	if n := len(m.Tasks.Active); n > 0 {
		fmt.Fprintf(&b, "\nActive Tasks (%d):\n", n)
		for i, t := range m.Tasks.Active {
			if i == 3 {
				fmt.Fprintf(&b, "... and %d more tasks\n", n-3)
				break
			}
			desc := t.Description
			if desc == "" {
				desc = "No description"
			}
			assignee := t.AssignedTo
			if assignee == "" {
				assignee = "Unassigned"
			}
			fmt.Fprintf(&b, "%s %s → %s\n", priorityMark(t), desc, assignee)
		}
	}
	if n := len(m.Tasks.Completed); n > 0 {
		fmt.Fprintf(&b, "✅ Completed: %d tasks\n", n)
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderDiagnostics surfaces skipped manifest files from the last scan.
func (a *App) renderDiagnostics() string {
	if a.snapshot == nil || len(a.snapshot.Diagnostics) == 0 {
		return ""
	}
	d := a.snapshot.Diagnostics[0]
	note := fmt.Sprintf("⚠ %d manifest file(s) skipped: %s", len(a.snapshot.Diagnostics), d.Message())
	return warnStyle.Render(note)
}

func (a *App) renderFooter() string {
	info := fmt.Sprintf("🏭 Foundry OS %s   ⚡ PLUG-AND-PLAY System   🕐 %s",
		version.Short(), time.Now().Format("2006-01-02 15:04"))
	keys := "q quit · r refresh · n new project · f status filter · t type filter · s sort · ↑↓ navigate · esc back"
	return lipgloss.JoinVertical(lipgloss.Left, "", dimStyle.Render(info), hintStyle.Render(keys))
}

// displayName substitutes the placeholder for a manifest with no name.
func displayName(m manifest.Manifest) string {
	if m.ProjectName == "" {
		return "Unknown Project"
	}
	return m.ProjectName
}

// orUnknown substitutes the capitalized placeholder for empty values.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// titleCase uppercases the first letter of a lowercased value.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// padLabel pads or truncates a label to a fixed display width.
func padLabel(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// maxCount returns the largest value in a counter map.
func maxCount[K comparable](m map[K]int) int {
	most := 0
	for _, v := range m {
		if v > most {
			most = v
		}
	}
	return most
}
