// Package project defines the records exchanged with the planning service:
// the input a user submits, the summaries listed in history, and the full
// generated result.
package project

import (
	"strings"
	"time"

	"github.com/Iron-Ham/planner/internal/errors"
)

// Input is the body of a plan generation request.
type Input struct {
	ProjectType  string   `json:"project_type" yaml:"project_type"`
	Objectives   string   `json:"objectives" yaml:"objectives"`
	Industry     string   `json:"industry" yaml:"industry"`
	TeamMembers  []string `json:"team_members" yaml:"team_members"`
	Requirements []string `json:"requirements" yaml:"requirements"`
}

// Summary is one row of the project history listing.
type Summary struct {
	ID          string `json:"id"`
	ProjectType string `json:"project_type"`
	Objectives  string `json:"objectives"`
	Industry    string `json:"industry"`
	CreatedAt   string `json:"created_at"`
}

// Result is the full generated output for one project. Plan, Schedule and
// Review hold line-oriented markup; HTMLOutput is a complete document that is
// passed through untouched.
type Result struct {
	ID         string `json:"id,omitempty"`
	Plan       string `json:"plan"`
	Schedule   string `json:"schedule"`
	Review     string `json:"review"`
	HTMLOutput string `json:"html_output"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Validate checks the fields the service requires. Only the first missing
// field is reported, in form order.
func (in Input) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"project_type", in.ProjectType},
		{"objectives", in.Objectives},
		{"industry", in.Industry},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.NewValidationError("is required").WithField(r.field)
		}
	}
	return nil
}

// Pruned returns a copy with blank team member and requirement entries
// removed. The receiver is not modified.
func (in Input) Pruned() Input {
	out := in
	out.TeamMembers = pruneBlank(in.TeamMembers)
	out.Requirements = pruneBlank(in.Requirements)
	return out
}

func pruneBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

// createdLayouts are the timestamp shapes the service has been seen to emit.
// Python's isoformat() omits the zone for naive datetimes.
var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CreatedTime parses CreatedAt. Zone-less values are read as UTC.
func (s Summary) CreatedTime() (time.Time, bool) {
	return parseCreated(s.CreatedAt)
}

// FormatCreated renders CreatedAt for display, e.g. "Mar 4, 2025, 02:30 PM".
// Unparseable values are returned verbatim.
func (s Summary) FormatCreated() string {
	t, ok := s.CreatedTime()
	if !ok {
		return s.CreatedAt
	}
	return t.Local().Format("Jan 2, 2006, 03:04 PM")
}

func parseCreated(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
