// Package dashboard implements the terminal empire dashboard, an Elm-style
// bubbletea program over the portfolio service.
//
// The model follows the standard cycle: messages arrive in Update, mutate
// the model, and View renders the whole screen from state. A tick message
// re-fetches the portfolio snapshot so the dashboard stays current without
// any cache.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foundryos/foundry/internal/manifest"
	"github.com/foundryos/foundry/internal/ports/primary"
)

// refreshInterval matches the browser dashboard's default auto-refresh.
const refreshInterval = 60 * time.Second

// filterAll is the filter value that disables filtering.
const filterAll = "All"

// viewState identifies which screen is showing.
type viewState int

const (
	stateOverview viewState = iota
	stateCreate
)

// sortMode orders the portfolio list.
type sortMode int

const (
	sortByName sortMode = iota
	sortByRevenue
	sortByStatus
	sortByCreated
	sortModeCount
)

func (s sortMode) String() string {
	switch s {
	case sortByRevenue:
		return "Revenue"
	case sortByStatus:
		return "Status"
	case sortByCreated:
		return "Created"
	default:
		return "Name"
	}
}

// snapshotMsg carries a fresh portfolio snapshot into the update loop.
type snapshotMsg struct {
	status *primary.EmpireStatus
	at     time.Time
	err    error
}

// createdMsg reports the outcome of a create-form submission.
type createdMsg struct {
	name string
	err  error
}

// App is the dashboard model. It holds all UI state.
type App struct {
	service primary.PortfolioService

	width  int
	height int

	state     viewState
	snapshot  *primary.EmpireStatus
	updatedAt time.Time
	loadErr   string
	flash     string

	portfolio    list.Model
	statusFilter string // "All" or a raw status value
	typeFilter   string // "All" or a raw project type
	sortBy       sortMode
	form         createForm
}

// New creates the dashboard model around a portfolio service.
func New(service primary.PortfolioService) *App {
	portfolio := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	portfolio.Title = "Projects"
	portfolio.SetShowStatusBar(false)
	portfolio.SetFilteringEnabled(false)
	portfolio.SetShowHelp(false)

	return &App{
		service:      service,
		state:        stateOverview,
		portfolio:    portfolio,
		statusFilter: filterAll,
		typeFilter:   filterAll,
		form:         newCreateForm(),
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return a.fetchSnapshot()
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.portfolio.SetSize(maxInt(24, msg.Width/2-6), maxInt(8, msg.Height/3))
		return a, nil

	case snapshotMsg:
		if msg.err != nil {
			a.loadErr = msg.err.Error()
		} else {
			a.loadErr = ""
			a.snapshot = msg.status
			a.updatedAt = msg.at
			a.rebuildPortfolio()
		}
		return a, a.scheduleRefresh()

	case createdMsg:
		if msg.err != nil {
			a.flash = fmt.Sprintf("Error: %v", msg.err)
			return a, nil
		}
		a.flash = fmt.Sprintf("✅ Created %s!", msg.name)
		a.state = stateOverview
		a.form = newCreateForm()
		return a, a.fetchSnapshot()

	case tea.KeyMsg:
		if a.state == stateCreate {
			return a.updateCreate(msg)
		}
		return a.updateOverview(msg)
	}

	if a.state == stateCreate {
		var cmd tea.Cmd
		a.form, cmd = a.form.update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.portfolio, cmd = a.portfolio.Update(msg)
	return a, cmd
}

func (a *App) updateOverview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "r":
		a.flash = "Refreshing..."
		return a, a.fetchSnapshot()
	case "n":
		a.state = stateCreate
		a.form = newCreateForm()
		a.flash = ""
		return a, a.form.focusCmd()
	case "f":
		a.statusFilter = nextChoice(a.statusFilterChoices(), a.statusFilter)
		a.rebuildPortfolio()
		return a, nil
	case "t":
		a.typeFilter = nextChoice(a.typeFilterChoices(), a.typeFilter)
		a.rebuildPortfolio()
		return a, nil
	case "s":
		a.sortBy = (a.sortBy + 1) % sortModeCount
		a.rebuildPortfolio()
		return a, nil
	}

	var cmd tea.Cmd
	a.portfolio, cmd = a.portfolio.Update(msg)
	return a, cmd
}

func (a *App) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = stateOverview
		a.flash = ""
		return a, nil
	case "enter":
		if a.form.focus != formFocusSubmit {
			a.form.advance()
			return a, nil
		}
		req, err := a.form.buildRequest()
		if err != nil {
			a.flash = fmt.Sprintf("Error: %v", err)
			return a, nil
		}
		a.flash = "Creating..."
		return a, a.createProject(req)
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.update(msg)
	return a, cmd
}

func (a *App) fetchSnapshot() tea.Cmd {
	return func() tea.Msg {
		status, err := a.service.EmpireStatus(context.Background())
		return snapshotMsg{status: status, at: time.Now(), err: err}
	}
}

func (a *App) scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		status, err := a.service.EmpireStatus(context.Background())
		return snapshotMsg{status: status, at: time.Now(), err: err}
	})
}

func (a *App) createProject(req primary.CreateProjectRequest) tea.Cmd {
	return func() tea.Msg {
		created, err := a.service.CreateProject(context.Background(), req)
		if err != nil {
			return createdMsg{err: err}
		}
		return createdMsg{name: created.ProjectName}
	}
}

// rebuildPortfolio refreshes the list items from the snapshot under the
// active filters and sort.
func (a *App) rebuildPortfolio() {
	projects := a.filteredProjects()
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{stored: p}
	}
	a.portfolio.SetItems(items)
	if len(items) > 0 && a.portfolio.Index() >= len(items) {
		a.portfolio.Select(len(items) - 1)
	}
}

// filteredProjects applies the active filters and sort to the snapshot.
func (a *App) filteredProjects() []manifest.Stored {
	if a.snapshot == nil {
		return nil
	}

	var out []manifest.Stored
	for _, p := range a.snapshot.Projects {
		if a.statusFilter != filterAll && filterKey(p.Manifest.Status) != a.statusFilter {
			continue
		}
		if a.typeFilter != filterAll && filterKey(p.Manifest.ProjectType) != a.typeFilter {
			continue
		}
		out = append(out, p)
	}

	sortProjects(out, a.sortBy)
	return out
}

// sortProjects orders projects for display: Name ascending, Revenue
// descending, Status lexical, Created by metrics start date ascending.
func sortProjects(projects []manifest.Stored, mode sortMode) {
	switch mode {
	case sortByRevenue:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Manifest.RevenueAmount() > projects[j].Manifest.RevenueAmount()
		})
	case sortByStatus:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Manifest.Status < projects[j].Manifest.Status
		})
	case sortByCreated:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Manifest.Metrics.StartDate < projects[j].Manifest.Metrics.StartDate
		})
	default:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Manifest.ProjectName < projects[j].Manifest.ProjectName
		})
	}
}

// statusFilterChoices lists "All" plus every status observed in the
// snapshot, sorted for stable cycling.
func (a *App) statusFilterChoices() []string {
	return filterChoices(a.snapshot, func(m manifest.Manifest) string {
		return m.Status
	})
}

// typeFilterChoices lists "All" plus every project type observed in the
// snapshot, sorted for stable cycling.
func (a *App) typeFilterChoices() []string {
	return filterChoices(a.snapshot, func(m manifest.Manifest) string {
		return m.ProjectType
	})
}

func filterChoices(snapshot *primary.EmpireStatus, field func(manifest.Manifest) string) []string {
	seen := map[string]struct{}{}
	var values []string
	if snapshot != nil {
		for _, p := range snapshot.Projects {
			v := filterKey(field(p.Manifest))
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return append([]string{filterAll}, values...)
}

// filterKey normalizes an empty field to "unknown" so missing values can
// be selected as a filter.
func filterKey(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// nextChoice returns the choice after current, wrapping around. An
// unrecognized current value resets to the first choice.
func nextChoice(choices []string, current string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
