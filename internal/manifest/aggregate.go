package manifest

import (
	"sort"
	"strings"
	"time"
)

// Summary is the derived metrics view over a manifest set. Distribution
// maps hold only observed keys; with zero manifests every map is empty.
type Summary struct {
	TotalProjects      int
	ActiveProjects     int
	TotalRevenue       float64
	TotalUsers         int
	RevenueProjects    []RevenueEntry
	StatusDistribution map[Status]int
	AgentWorkload      map[string]int
	TaskDistribution   map[Priority]int
	GrowthPoints       []GrowthPoint
}

// RevenueEntry is one revenue-bearing project in the summary.
type RevenueEntry struct {
	Name    string
	Revenue float64
	Status  Status
	Users   int
}

// GrowthPoint is one dated revenue observation, derived from a manifest's
// startDate metric.
type GrowthPoint struct {
	Date    time.Time
	Revenue float64
	Project string
}

// AvgRevenue returns the mean revenue across revenue-bearing projects.
func (s Summary) AvgRevenue() float64 {
	if len(s.RevenueProjects) == 0 {
		return 0
	}
	return s.TotalRevenue / float64(len(s.RevenueProjects))
}

// Aggregate computes the summary in one pass over the manifest set.
// Archived and completed projects are excluded from the active count,
// the agent workload, and the task breakdown, but still contribute to
// totals and the status distribution.
func Aggregate(projects []Stored) Summary {
	s := Summary{
		StatusDistribution: make(map[Status]int),
		AgentWorkload:      make(map[string]int),
		TaskDistribution:   make(map[Priority]int),
	}

	for _, p := range projects {
		m := p.Manifest
		status := ParseStatus(m.Status)
		revenue := m.RevenueAmount()

		s.TotalProjects++
		s.StatusDistribution[status]++
		s.TotalRevenue += revenue
		s.TotalUsers += m.Metrics.Users

		if revenue > 0 {
			s.RevenueProjects = append(s.RevenueProjects, RevenueEntry{
				Name:    m.ProjectName,
				Revenue: revenue,
				Status:  status,
				Users:   m.Metrics.Users,
			})
		}

		if !status.Terminal() {
			s.ActiveProjects++
			for _, agent := range m.Team {
				s.AgentWorkload[agent]++
			}
			for _, t := range m.Tasks.Active {
				s.TaskDistribution[t.EffectivePriority()]++
			}
		}

		if m.Metrics.StartDate != "" {
			if date, err := time.Parse("2006-01-02", m.Metrics.StartDate); err == nil {
				s.GrowthPoints = append(s.GrowthPoints, GrowthPoint{
					Date:    date,
					Revenue: revenue,
					Project: m.ProjectName,
				})
			}
		}
	}

	sort.Slice(s.GrowthPoints, func(i, j int) bool {
		return s.GrowthPoints[i].Date.Before(s.GrowthPoints[j].Date)
	})

	return s
}

// SortByName orders manifests by project name, case-sensitive lexical
// ascending (capital letters sort before lowercase). The sort is stable.
func SortByName(projects []Stored) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Manifest.ProjectName < projects[j].Manifest.ProjectName
	})
}

// FindByName scans for a project by name, case-insensitive, returning the
// first match.
func FindByName(projects []Stored, name string) (Stored, bool) {
	for _, p := range projects {
		if strings.EqualFold(p.Manifest.ProjectName, name) {
			return p, true
		}
	}
	return Stored{}, false
}
