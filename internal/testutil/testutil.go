// Package testutil provides testing utilities for planner tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/project"
)

// SetupConfigHome points the config directory at a temporary XDG home and
// resets viper to the defaults. Returns the planner config directory
// (which is not created). Viper is reset again when the test completes.
func SetupConfigHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	viper.Reset()
	config.SetDefaults()
	t.Cleanup(viper.Reset)

	return filepath.Join(home, "planner")
}

// WriteLog writes lines as the active log file under the current config
// directory and returns its path.
func WriteLog(t *testing.T, lines ...string) string {
	t.Helper()

	dir := config.LogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create log dir: %v", err)
	}
	path := filepath.Join(dir, logging.LogFileName)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}
	return path
}

// FakeService is an in-memory planning service served over HTTP. Generated
// plans echo the submitted input so tests can check what was sent.
type FakeService struct {
	mu       sync.Mutex
	projects []project.Summary
	results  map[string]project.Result
	received []project.Input
	server   *httptest.Server
}

// NewFakeService starts a service seeded with two projects, p1 (Website,
// Retail) and p2 (Mobile App, Healthcare). It is closed when the test
// completes.
func NewFakeService(t *testing.T) *FakeService {
	t.Helper()

	f := &FakeService{
		projects: []project.Summary{
			{ID: "p1", ProjectType: "Website", Industry: "Retail", Objectives: "Sell online", CreatedAt: "2024-05-01T09:30:00"},
			{ID: "p2", ProjectType: "Mobile App", Industry: "Healthcare", Objectives: "Book visits", CreatedAt: "2024-05-02T09:30:00"},
		},
		results: map[string]project.Result{
			"p1": {ID: "p1", Plan: "# Website Plan", Schedule: "- launch", Review: "ok", HTMLOutput: "<html>p1</html>"},
			"p2": {ID: "p2", Plan: "# App Plan", Schedule: "- beta", Review: "ok", HTMLOutput: "<html>p2</html>"},
		},
	}
	f.server = httptest.NewServer(f.handler())
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the service base URL.
func (f *FakeService) URL() string {
	return f.server.URL
}

// SetProjects replaces the stored listing. Results are left alone.
func (f *FakeService) SetProjects(projects []project.Summary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = projects
}

// Received returns the generation requests seen so far.
func (f *FakeService) Received() []project.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]project.Input(nil), f.received...)
}

// Has reports whether a project with id is still stored.
func (f *FakeService) Has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.results[id]
	return ok
}

func (f *FakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /generate-project-plan", func(w http.ResponseWriter, r *http.Request) {
		var in project.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		f.mu.Lock()
		f.received = append(f.received, in)
		f.mu.Unlock()

		writeJSON(w, project.Result{
			ID:         "gen-1",
			Plan:       "# " + in.ProjectType + " Plan\n- **Kickoff** with " + strings.Join(in.TeamMembers, ", "),
			Schedule:   "## Week 1\n* design",
			Review:     "Feasible.",
			HTMLOutput: "<html><body>" + in.ProjectType + "</body></html>",
		})
	})

	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		list := f.projects
		if list == nil {
			list = []project.Summary{}
		}
		writeJSON(w, list)
	})

	mux.HandleFunc("GET /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		result, ok := f.results[r.PathValue("id")]
		if !ok {
			http.Error(w, `{"detail":"Project not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, result)
	})

	mux.HandleFunc("DELETE /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := r.PathValue("id")
		if _, ok := f.results[id]; !ok {
			http.Error(w, `{"detail":"Project not found"}`, http.StatusNotFound)
			return
		}
		kept := make([]project.Summary, 0, len(f.projects))
		for _, s := range f.projects {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		f.projects = kept
		delete(f.results, id)
		writeJSON(w, map[string]string{"message": "Project deleted successfully"})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
