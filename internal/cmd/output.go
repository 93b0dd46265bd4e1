package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/render"
	"github.com/Iron-Ham/planner/internal/tui/styles"
	"github.com/Iron-Ham/planner/internal/tui/view"
	"github.com/Iron-Ham/planner/internal/util"
)

// outputWidth is the wrap width for documents printed by the CLI.
const outputWidth = 100

// Valid values for --tab.
const (
	tabAll      = "all"
	tabPlan     = "plan"
	tabSchedule = "schedule"
	tabReview   = "review"
	tabHTML     = "html"
)

func validTabs() []string {
	return []string{tabAll, tabPlan, tabSchedule, tabReview, tabHTML}
}

// checkTab rejects an unknown --tab value before any request is made.
func checkTab(tab string) error {
	if !slices.Contains(validTabs(), strings.ToLower(strings.TrimSpace(tab))) {
		return fmt.Errorf("invalid tab: %s\nValid options: %s", tab, strings.Join(validTabs(), ", "))
	}
	return nil
}

// resultSection is one printable part of a result.
type resultSection struct {
	key   string
	title string
	body  string
	raw   bool
}

func sections(r project.Result) []resultSection {
	return []resultSection{
		{tabPlan, view.TabPlan.Label(), r.Plan, false},
		{tabSchedule, view.TabSchedule.Label(), r.Schedule, false},
		{tabReview, view.TabReview.Label(), r.Review, false},
		{tabHTML, view.TabHTML.Label(), r.HTMLOutput, true},
	}
}

// printResult writes the selected tab of r to w. "all" prints the three
// markup tabs; the HTML document is only printed when asked for by name.
func printResult(w io.Writer, r project.Result, tab string) error {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" {
		tab = tabAll
	}

	matched := false
	st := styles.Active()
	for _, s := range sections(r) {
		if tab != s.key && (tab != tabAll || s.raw) {
			continue
		}
		matched = true

		fmt.Fprintln(w, st.Title.Render(s.title))
		if s.raw {
			fmt.Fprintln(w, s.body)
		} else {
			fmt.Fprintln(w, view.RenderDocument(render.Render(s.body), outputWidth))
		}
		fmt.Fprintln(w)
	}

	if !matched {
		return fmt.Errorf("invalid tab: %s\nValid options: %s", tab, strings.Join(validTabs(), ", "))
	}
	return nil
}

// printSummaries writes one line per project.
func printSummaries(w io.Writer, summaries []project.Summary) {
	for _, s := range summaries {
		fmt.Fprintf(w, "%s  %-20s  %-16s  %s\n",
			s.ID,
			util.TruncateString(util.SingleLine(s.ProjectType), 20),
			util.TruncateString(util.SingleLine(s.Industry), 16),
			s.FormatCreated(),
		)
		if objectives := util.SingleLine(s.Objectives); objectives != "" {
			fmt.Fprintf(w, "    %s\n", util.TruncateString(objectives, outputWidth-4))
		}
	}
}
