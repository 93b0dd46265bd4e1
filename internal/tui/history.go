package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Iron-Ham/planner/internal/project"
)

// historyModel holds the history screen's local UI state. The list itself
// lives in the catalog.
type historyModel struct {
	filter    textinput.Model
	filtering bool
	cursor    int
	// confirming is the project awaiting a y/n answer before deletion.
	confirming *project.Summary

	// openSeq numbers open requests; pending is the only one whose response
	// may still be shown. A zero pending.seq means none.
	openSeq uint64
	pending openRequest
}

// openRequest identifies one fetch started by selecting a project.
type openRequest struct {
	id  string
	seq uint64
}

func newHistoryModel() historyModel {
	ti := textinput.New()
	ti.Placeholder = "Search by type, industry or objectives (/)"
	ti.Prompt = "🔍 "
	ti.CharLimit = 200
	return historyModel{filter: ti}
}

// clampCursor keeps the cursor inside a list of n entries.
func (h *historyModel) clampCursor(n int) {
	if h.cursor >= n {
		h.cursor = n - 1
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
}

// selected returns the summary under the cursor.
func (h *historyModel) selected(visible []project.Summary) (project.Summary, bool) {
	if h.cursor < 0 || h.cursor >= len(visible) {
		return project.Summary{}, false
	}
	return visible[h.cursor], true
}

// beginOpen records a fetch of id as the pending one and returns its token.
// Any earlier fetch is superseded.
func (h *historyModel) beginOpen(id string) uint64 {
	h.openSeq++
	h.pending = openRequest{id: id, seq: h.openSeq}
	return h.openSeq
}

// finishOpen reports whether a response for id with token seq answers the
// pending fetch, and clears it if so.
func (h *historyModel) finishOpen(id string, seq uint64) bool {
	if h.pending.seq == 0 || h.pending.seq != seq || h.pending.id != id {
		return false
	}
	h.pending = openRequest{}
	return true
}

// leave drops the screen's transient state when another mode takes over:
// filter text, cursor, prompt and any pending fetch.
func (h *historyModel) leave() {
	h.filter.SetValue("")
	h.filter.Blur()
	h.filtering = false
	h.cursor = 0
	h.confirming = nil
	h.pending = openRequest{}
}
