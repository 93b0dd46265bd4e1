package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/tui/view"
)

// Base field positions in formModel.fields.
const (
	fieldProjectType = iota
	fieldObjectives
	fieldIndustry
	baseFieldCount
)

// formModel holds the project input form. Focus moves over a flat sequence:
// base fields, team member rows, requirement rows, then the submit button.
type formModel struct {
	fields       []textinput.Model
	teamMembers  []textinput.Model
	requirements []textinput.Model
	focus        int
}

func newFormModel() formModel {
	fields := make([]textinput.Model, baseFieldCount)
	fields[fieldProjectType] = newInput("e.g., Website, Mobile App, Software")
	fields[fieldIndustry] = newInput("e.g., Technology, Healthcare, Finance")
	fields[fieldObjectives] = newInput("Describe the main goals and objectives of your project")
	fields[fieldObjectives].CharLimit = 2000

	f := formModel{
		fields:       fields,
		teamMembers:  []textinput.Model{newMemberInput()},
		requirements: []textinput.Model{newRequirementInput()},
	}
	f.fields[fieldProjectType].Focus()
	return f
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 200
	return ti
}

func newMemberInput() textinput.Model {
	return newInput("e.g., John Doe (Project Manager)")
}

func newRequirementInput() textinput.Model {
	return newInput("Describe a project requirement")
}

// focusCount is the number of focusable elements including the button.
func (f *formModel) focusCount() int {
	return len(f.fields) + len(f.teamMembers) + len(f.requirements) + 1
}

func (f *formModel) submitFocused() bool {
	return f.focus == f.focusCount()-1
}

// locate maps the focus index to its list and row. list is nil for the
// submit button.
func (f *formModel) locate(i int) (list *[]textinput.Model, row int) {
	switch {
	case i < len(f.fields):
		return &f.fields, i
	case i < len(f.fields)+len(f.teamMembers):
		return &f.teamMembers, i - len(f.fields)
	case i < len(f.fields)+len(f.teamMembers)+len(f.requirements):
		return &f.requirements, i - len(f.fields) - len(f.teamMembers)
	default:
		return nil, 0
	}
}

// setFocus moves focus to i (wrapping) and returns the cursor blink command.
func (f *formModel) setFocus(i int) tea.Cmd {
	n := f.focusCount()
	i = ((i % n) + n) % n

	if list, row := f.locate(f.focus); list != nil {
		(*list)[row].Blur()
	}
	f.focus = i
	if list, row := f.locate(i); list != nil {
		return (*list)[row].Focus()
	}
	return nil
}

func (f *formModel) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *formModel) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// addRow appends a row to the focused list (team members when focus is
// elsewhere) and focuses it.
func (f *formModel) addRow() tea.Cmd {
	list, _ := f.locate(f.focus)
	if list == &f.requirements {
		f.requirements = append(f.requirements, newRequirementInput())
		return f.setFocus(len(f.fields) + len(f.teamMembers) + len(f.requirements) - 1)
	}

	// Blur before the indexes shift.
	if l, row := f.locate(f.focus); l != nil {
		(*l)[row].Blur()
	}
	f.teamMembers = append(f.teamMembers, newMemberInput())
	f.focus = len(f.fields) + len(f.teamMembers) - 1
	return f.teamMembers[len(f.teamMembers)-1].Focus()
}

// removeRow deletes the focused team member or requirement row. The last
// remaining row of a list is kept.
func (f *formModel) removeRow() tea.Cmd {
	list, row := f.locate(f.focus)
	if list == nil || list == &f.fields || len(*list) <= 1 {
		return nil
	}

	(*list)[row].Blur()
	*list = append((*list)[:row], (*list)[row+1:]...)
	target := f.focus
	if row == len(*list) {
		target--
	}
	f.focus = target
	if l, r := f.locate(target); l != nil {
		return (*l)[r].Focus()
	}
	return nil
}

// update forwards msg to the focused input.
func (f *formModel) update(msg tea.Msg) tea.Cmd {
	list, row := f.locate(f.focus)
	if list == nil {
		return nil
	}
	var cmd tea.Cmd
	(*list)[row], cmd = (*list)[row].Update(msg)
	return cmd
}

// input collects the form values. Blank rows are kept; the controller prunes
// them on submit.
func (f *formModel) input() project.Input {
	values := func(list []textinput.Model) []string {
		out := make([]string, len(list))
		for i, ti := range list {
			out[i] = ti.Value()
		}
		return out
	}
	return project.Input{
		ProjectType:  f.fields[fieldProjectType].Value(),
		Objectives:   f.fields[fieldObjectives].Value(),
		Industry:     f.fields[fieldIndustry].Value(),
		TeamMembers:  values(f.teamMembers),
		Requirements: values(f.requirements),
	}
}

// state builds the view state.
func (f *formModel) state(loading bool, spinner string, width int) view.FormState {
	labels := []string{"Project Type", "Project Objectives", "Industry"}
	fields := make([]view.FormField, len(f.fields))
	for i, ti := range f.fields {
		fields[i] = view.FormField{
			Label:    labels[i],
			Required: true,
			Input:    ti.View(),
			Focused:  f.focus == i,
		}
	}

	rows := func(list []textinput.Model, offset int) []view.FormField {
		out := make([]view.FormField, len(list))
		for i, ti := range list {
			out[i] = view.FormField{Input: ti.View(), Focused: f.focus == offset+i}
		}
		return out
	}

	return view.FormState{
		Fields: fields,
		Lists: []view.FormList{
			{Label: "Team Members", AddHint: "Add Member", Rows: rows(f.teamMembers, len(f.fields))},
			{Label: "Project Requirements", AddHint: "Add Requirement", Rows: rows(f.requirements, len(f.fields)+len(f.teamMembers))},
		},
		SubmitFocused: f.submitFocused(),
		Loading:       loading,
		Spinner:       spinner,
		Width:         width,
	}
}
