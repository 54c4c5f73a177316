package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foundryos/foundry/internal/ports/primary"
)

// Choice lists for the create form, matching the browser dashboard's
// selectboxes: the three configured templates plus the two extra types.
var (
	formTypeChoices = []string{
		"SaaS_Launch_Playbook",
		"restaurant_bot",
		"marketplace",
		"ecommerce_platform",
		"custom",
	}
	formStatusChoices = []string{
		"planning",
		"development",
		"testing",
		"production",
		"maintenance",
	}
)

// formFocus identifies the focused form field.
type formFocus int

const (
	formFocusName formFocus = iota
	formFocusType
	formFocusStatus
	formFocusSubmit
	formFieldCount
)

// createForm is the new-project form state.
type createForm struct {
	name      textinput.Model
	typeIdx   int
	statusIdx int
	focus     formFocus
}

func newCreateForm() createForm {
	name := textinput.New()
	name.Placeholder = "Project Name"
	name.CharLimit = 64
	name.Width = 32
	name.Focus()

	return createForm{name: name}
}

func (f createForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

// advance moves focus to the next field, wrapping from submit to name.
func (f *createForm) advance() {
	f.setFocus((f.focus + 1) % formFieldCount)
}

// retreat moves focus to the previous field.
func (f *createForm) retreat() {
	f.setFocus((f.focus + formFieldCount - 1) % formFieldCount)
}

func (f *createForm) setFocus(focus formFocus) {
	f.focus = focus
	if focus == formFocusName {
		f.name.Focus()
	} else {
		f.name.Blur()
	}
}

// update handles messages while the form is showing. Enter is handled by
// the caller, which knows whether to advance or submit.
func (f createForm) update(msg tea.Msg) (createForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.advance()
			return f, nil
		case "shift+tab", "up":
			f.retreat()
			return f, nil
		case "left":
			if f.focus == formFocusType || f.focus == formFocusStatus {
				f.cycleChoice(-1)
				return f, nil
			}
		case "right":
			if f.focus == formFocusType || f.focus == formFocusStatus {
				f.cycleChoice(1)
				return f, nil
			}
		}
	}

	if f.focus == formFocusName {
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *createForm) cycleChoice(delta int) {
	switch f.focus {
	case formFocusType:
		f.typeIdx = (f.typeIdx + delta + len(formTypeChoices)) % len(formTypeChoices)
	case formFocusStatus:
		f.statusIdx = (f.statusIdx + delta + len(formStatusChoices)) % len(formStatusChoices)
	}
}

// buildRequest converts the form into a create request. The service fills
// the remaining defaults.
func (f createForm) buildRequest() (primary.CreateProjectRequest, error) {
	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		return primary.CreateProjectRequest{}, fmt.Errorf("project name is required")
	}
	return primary.CreateProjectRequest{
		Name:   name,
		Type:   formTypeChoices[f.typeIdx],
		Status: formStatusChoices[f.statusIdx],
	}, nil
}

// view renders the form.
func (f createForm) view() string {
	lines := []string{
		chartTitleStyle.Render("➕ Add Project"),
		"",
		f.fieldLabel("Project Name", formFocusName) + " " + f.name.View(),
		f.fieldLabel("Type", formFocusType) + " " + f.choiceView(formTypeChoices[f.typeIdx], formFocusType),
		f.fieldLabel("Status", formFocusStatus) + " " + f.choiceView(formStatusChoices[f.statusIdx], formFocusStatus),
		"",
		f.submitView(),
		"",
		hintStyle.Render("enter next field · ◀▶ change choice · esc back"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (f createForm) fieldLabel(label string, field formFocus) string {
	padded := fmt.Sprintf("%-13s", label)
	if f.focus == field {
		return focusedStyle.Render(padded)
	}
	return dimStyle.Render(padded)
}

func (f createForm) choiceView(value string, field formFocus) string {
	if f.focus == field {
		return focusedStyle.Render("◀ " + value + " ▶")
	}
	return value
}

func (f createForm) submitView() string {
	if f.focus == formFocusSubmit {
		return focusedStyle.Render("[ Create Project ]")
	}
	return dimStyle.Render("[ Create Project ]")
}
