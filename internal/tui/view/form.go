package view

import (
	"strings"

	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// Button labels for the submit control.
const (
	SubmitLabel     = "Generate Project Plan"
	GeneratingLabel = "Generating..."
)

// FormField is one labelled single-value input.
type FormField struct {
	Label    string
	Required bool
	Input    string
	Focused  bool
}

// FormList is a labelled, growable list of inputs.
type FormList struct {
	Label string
	// AddHint names the add action, e.g. "Add Member".
	AddHint string
	Rows    []FormField
}

// FormState holds what the form screen needs to render.
type FormState struct {
	Fields        []FormField
	Lists         []FormList
	SubmitFocused bool
	Loading       bool
	Spinner       string
	Width         int
}

// FormView renders the project input form.
type FormView struct{}

// Render returns the form screen.
func (FormView) Render(s FormState) string {
	st := styles.Active()
	var b strings.Builder

	b.WriteString(st.Primary.Bold(true).Render("Create New Project"))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("Fill in the details below to generate a plan, schedule and review."))
	b.WriteString("\n\n")

	for _, f := range s.Fields {
		b.WriteString(renderLabel(f.Label, f.Required))
		b.WriteString("\n")
		b.WriteString(renderInput(f, s.Width))
		b.WriteString("\n")
	}

	for _, l := range s.Lists {
		b.WriteString("\n")
		b.WriteString(st.Label.Render(l.Label) + "  " + st.Muted.Render("ctrl+a "+strings.ToLower(l.AddHint)))
		b.WriteString("\n")
		for _, row := range l.Rows {
			b.WriteString(renderInput(row, s.Width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case s.Loading:
		b.WriteString(st.Button.Render(s.Spinner + " " + GeneratingLabel))
	case s.SubmitFocused:
		b.WriteString(st.ButtonActive.Render(SubmitLabel))
	default:
		b.WriteString(st.Button.Render(SubmitLabel))
	}
	b.WriteString("\n")

	b.WriteString(HelpBar(
		"tab/shift+tab", "move",
		"ctrl+a", "add row",
		"ctrl+x", "remove row",
		"ctrl+s", "generate",
		"esc", "history",
	))
	return b.String()
}

func renderLabel(label string, required bool) string {
	st := styles.Active()
	out := st.Label.Render(label)
	if required {
		out += st.RequiredMark.Render(" *")
	}
	return out
}

func renderInput(f FormField, width int) string {
	st := styles.Active()
	box := st.InputBox
	if f.Focused {
		box = st.InputBoxActive
	}
	if width > 6 {
		box = box.Width(width - 4)
	}
	return box.Render(f.Input)
}
