package msg

import "github.com/Iron-Ham/planner/internal/project"

// ProjectsLoadedMsg is sent when a catalog refresh completes.
type ProjectsLoadedMsg struct {
	Err error
}

// ProjectOpenedMsg carries a full result fetched from the history list. Seq
// echoes the token the request was issued with.
type ProjectOpenedMsg struct {
	ID     string
	Seq    uint64
	Result project.Result
	Err    error
}

// PlanGeneratedMsg is sent when a plan submission completes. The result, if
// any, is already stored in the controller.
type PlanGeneratedMsg struct {
	Err error
}

// ProjectDeletedMsg is sent when a delete (and the refresh it triggers)
// completes.
type ProjectDeletedMsg struct {
	ID  string
	Err error
}

// DownloadedMsg is sent when the exported document has been saved.
type DownloadedMsg struct {
	Name string
	Path string
	Err  error
}

// ThemeChangedMsg is sent when the configured theme changes on disk.
type ThemeChangedMsg struct {
	Theme string
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}
