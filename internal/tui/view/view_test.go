package view

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/planner/internal/controller"
	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/render"
)

func TestHeaderView(t *testing.T) {
	var h HeaderView

	for _, mode := range []controller.Mode{controller.ModeHistory, controller.ModeForm} {
		out := h.Render(mode, 120)
		for _, want := range []string{AppTitle, "Project History", "Create New Project"} {
			if !strings.Contains(out, want) {
				t.Errorf("%v header missing %q", mode, want)
			}
		}
	}

	if out := h.Render(controller.ModeResults, 120); out != "" {
		t.Errorf("header should be hidden in results mode, got %q", out)
	}
}

func TestErrorBanner(t *testing.T) {
	if ErrorBanner("", 80) != "" {
		t.Error("empty message should render nothing")
	}
	out := ErrorBanner("HTTP error! status: 500", 80)
	if !strings.Contains(out, "Error") || !strings.Contains(out, "HTTP error! status: 500") {
		t.Errorf("banner = %q", out)
	}
}

func TestHelpBar(t *testing.T) {
	out := HelpBar("q", "quit", "n", "new")
	if !strings.Contains(out, "q quit") || !strings.Contains(out, "n new") {
		t.Errorf("HelpBar = %q", out)
	}
}

func TestHistoryView_EmptyStates(t *testing.T) {
	var v HistoryView

	tests := []struct {
		name  string
		state HistoryState
		want  string
	}{
		{"first load", HistoryState{Loading: true}, LoadingMessage},
		{"no projects", HistoryState{Loaded: true}, NoProjectsMessage},
		{"no matches", HistoryState{Loaded: true, FilterQuery: "zzz"}, NoMatchesMessage},
		{"blank filter counts as none", HistoryState{Loaded: true, FilterQuery: "   "}, NoProjectsMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := v.Render(tt.state); !strings.Contains(out, tt.want) {
				t.Errorf("Render() missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestHistoryView_Cards(t *testing.T) {
	var v HistoryView
	state := HistoryState{
		Loaded: true,
		Summaries: []project.Summary{
			{ID: "a", ProjectType: "Mobile App", Industry: "Retail", Objectives: "Grow retention", CreatedAt: "2025-03-04T14:30:00"},
			{ID: "b", ProjectType: "Data Platform", Industry: "Finance", Objectives: "Unify reporting", CreatedAt: "not a date"},
		},
		Width: 80,
	}

	out := v.Render(state)
	for _, want := range []string{"Mobile App", "Retail", "Grow retention", "Data Platform", "Created: not a date"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestHistoryView_ScrollsToCursor(t *testing.T) {
	var v HistoryView
	summaries := make([]project.Summary, 10)
	for i := range summaries {
		summaries[i] = project.Summary{ID: string(rune('a' + i)), ProjectType: "Project " + string(rune('A'+i))}
	}

	out := v.Render(HistoryState{Loaded: true, Summaries: summaries, Cursor: 9, Width: 80, Height: 24})
	if !strings.Contains(out, "Project J") {
		t.Error("selected card should be visible")
	}
	if strings.Contains(out, "Project A") {
		t.Error("first card should be scrolled out of view")
	}
	if !strings.Contains(out, "of 10") {
		t.Error("expected a position indicator")
	}
}

func TestHistoryView_ConfirmPrompt(t *testing.T) {
	var v HistoryView
	p := project.Summary{ID: "a", ProjectType: "Mobile App"}
	out := v.Render(HistoryState{Loaded: true, Summaries: []project.Summary{p}, Confirming: &p})

	if !strings.Contains(out, "Are you sure you want to delete this project?") {
		t.Error("confirmation prompt missing")
	}
	if !strings.Contains(out, "y delete") {
		t.Error("confirmation help missing")
	}
}

func TestFormView(t *testing.T) {
	var v FormView
	state := FormState{
		Fields: []FormField{
			{Label: "Project Type", Required: true, Input: "> Website"},
			{Label: "Industry", Required: true},
		},
		Lists: []FormList{
			{Label: "Team Members", AddHint: "Add Member", Rows: []FormField{{Input: "> Alice"}}},
		},
	}

	out := v.Render(state)
	for _, want := range []string{"Create New Project", "Project Type *", "Team Members", "add member", "Website", "Alice", SubmitLabel} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	state.Loading = true
	if out := v.Render(state); !strings.Contains(out, GeneratingLabel) {
		t.Error("loading form should show the generating label")
	}
}

func TestResultsView(t *testing.T) {
	var v ResultsView

	out := v.Render(ResultsState{Active: TabPlan, Body: "plan body"})
	for _, tab := range Tabs {
		if !strings.Contains(out, tab.Label()) {
			t.Errorf("tab %q missing", tab.Label())
		}
	}
	if strings.Contains(out, HTMLExportNote) || strings.Contains(out, "d download") {
		t.Error("export actions belong on the HTML tab only")
	}

	out = v.Render(ResultsState{Active: TabHTML, Body: "<html>", Notice: "Saved project-plan.html"})
	for _, want := range []string{HTMLExportNote, "d download", "p preview", "Saved project-plan.html"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML tab missing %q", want)
		}
	}
}

func TestTab_Label(t *testing.T) {
	if Tab(99).Label() != "Unknown" {
		t.Error("unknown tab label")
	}
}

func TestRenderDocument(t *testing.T) {
	blocks := render.Render("# Plan\n\n- **Owner:** Alice\nplain text")
	out := RenderDocument(blocks, 0)

	lines := strings.Split(out, "\n")
	if !strings.Contains(out, "Plan") || !strings.Contains(out, "• Owner: Alice") || !strings.Contains(out, "plain text") {
		t.Errorf("RenderDocument() = %q", out)
	}
	if idx := strings.Index(out, "Plan"); idx > strings.Index(out, "plain text") {
		t.Error("block order not preserved")
	}
	if len(lines) < 4 {
		t.Errorf("expected separator line, got %d lines", len(lines))
	}
}
