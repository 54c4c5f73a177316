// Package manifest defines the project manifest document model and the
// pure aggregation logic computed over a set of discovered manifests.
package manifest

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Manifest is one project's manifest document. Every field is optional on
// the wire; consumers substitute defaults for missing keys.
type Manifest struct {
	ProjectName    string   `json:"projectName"`
	ProjectType    string   `json:"projectType,omitempty"`
	Status         string   `json:"status,omitempty"`
	LeadStrategist string   `json:"leadStrategist,omitempty"`
	LeadArchitect  string   `json:"leadArchitect,omitempty"`
	Team           []string `json:"team,omitempty"`
	Metrics        Metrics  `json:"metrics,omitempty"`
	Tasks          Tasks    `json:"tasks,omitempty"`
	LiveURL        string   `json:"liveUrl,omitempty"`
	CoreRepo       string   `json:"coreRepo,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// Metrics holds a project's business metrics.
type Metrics struct {
	Revenue   *Revenue `json:"revenue,omitempty"`
	Users     int      `json:"users,omitempty"`
	StartDate string   `json:"startDate,omitempty"` // YYYY-MM-DD
}

// Tasks groups a project's task lists.
type Tasks struct {
	Active    []Task `json:"active"`
	Completed []Task `json:"completed"`
}

// Task is a single task entry inside a manifest.
type Task struct {
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// EffectivePriority resolves the task's priority, defaulting to medium
// when the field is absent.
func (t Task) EffectivePriority() Priority {
	if t.Priority == "" {
		return PriorityMedium
	}
	return ParsePriority(t.Priority)
}

// RevenueAmount returns the parsed revenue figure, 0 when none is recorded.
func (m Manifest) RevenueAmount() float64 {
	if m.Metrics.Revenue == nil {
		return 0
	}
	return m.Metrics.Revenue.Amount()
}

// RevenueDisplay returns the revenue figure as written in the manifest.
func (m Manifest) RevenueDisplay() string {
	if m.Metrics.Revenue == nil {
		return ""
	}
	return m.Metrics.Revenue.String()
}

// Slug derives the file-name key for a project name: lowercased, with
// spaces and hyphens replaced by underscores.
func Slug(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(name))
}

// Revenue holds a manifest's revenue figure as written on the wire, which
// may be a bare JSON number or a currency-formatted string like "$12,345".
// The raw token is preserved for display and round-tripping.
type Revenue struct {
	raw      string
	isString bool
}

// NewRevenue returns a Revenue carrying a currency-formatted string.
func NewRevenue(raw string) *Revenue {
	return &Revenue{raw: raw, isString: true}
}

// Amount returns the numeric value of the revenue figure. Numeric wire
// values pass through; strings are cleaned and parsed. Empty or unparsable
// figures yield 0, never an error.
func (r Revenue) Amount() float64 {
	if r.raw == "" {
		return 0
	}
	if !r.isString {
		f, err := strconv.ParseFloat(r.raw, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return ParseAmount(r.raw)
}

// String returns the figure as written in the manifest.
func (r Revenue) String() string {
	return r.raw
}

// UnmarshalJSON accepts both string and numeric encodings.
func (r *Revenue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Revenue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Revenue{raw: s, isString: true}
		return nil
	}
	*r = Revenue{raw: string(data)}
	return nil
}

// MarshalJSON writes the figure back in its original encoding.
func (r Revenue) MarshalJSON() ([]byte, error) {
	if r.isString {
		return json.Marshal(r.raw)
	}
	if r.raw == "" {
		return []byte("0"), nil
	}
	return []byte(r.raw), nil
}

// ParseAmount converts a currency-formatted string to a float. Every rune
// that is not a digit, '.', or '-' is stripped before parsing; an empty or
// unparsable remainder yields 0.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amount
}
