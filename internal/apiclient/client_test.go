package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/project"
)

func setupTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", 0, logging.NopLogger())
	client.SetHTTPClient(server.Client())
	return client
}

func TestClient_GeneratePlan(t *testing.T) {
	var got project.Input
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-project-plan", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(project.Result{
			ID:         "p-1",
			Plan:       "# Plan",
			Schedule:   "## Week 1",
			Review:     "- ok",
			HTMLOutput: "<html><body>doc</body></html>",
		})
	})

	in := project.Input{
		ProjectType:  "Web",
		Objectives:   "Launch",
		Industry:     "Health",
		TeamMembers:  []string{"Alice"},
		Requirements: []string{},
	}
	result, err := client.GeneratePlan(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "p-1", result.ID)
	assert.Equal(t, "<html><body>doc</body></html>", result.HTMLOutput)
	assert.Equal(t, in, got)
}

func TestClient_GeneratePlan_HTTPError(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"model overloaded"}`, http.StatusInternalServerError)
	})

	_, err := client.GeneratePlan(context.Background(), project.Input{})
	require.Error(t, err)

	var statusErr *errors.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "model overloaded")
	assert.False(t, errors.Is(err, errors.ErrServerUnreachable))
}

func TestClient_ListProjects(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		json.NewEncoder(w).Encode([]project.Summary{
			{ID: "b", ProjectType: "Second"},
			{ID: "a", ProjectType: "First"},
		})
	})

	summaries, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "b", summaries[0].ID, "service order must be preserved")
	assert.Equal(t, "a", summaries[1].ID)
}

func TestClient_ListProjects_NullBody(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	summaries, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestClient_GetProject(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/abc%2F1", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(project.Result{ID: "abc/1", Plan: "p"})
	})

	result, err := client.GetProject(context.Background(), "abc/1")
	require.NoError(t, err)
	assert.Equal(t, "abc/1", result.ID)
}

func TestClient_GetProject_NotFound(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProject(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestClient_DeleteProject(t *testing.T) {
	called := false
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/projects/p-9", r.URL.Path)
		w.Write([]byte(`{"message":"deleted"}`))
	})

	require.NoError(t, client.DeleteProject(context.Background(), "p-9"))
	assert.True(t, called)
}

func TestClient_DeleteProject_Failure(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := client.DeleteProject(context.Background(), "p-9")
	var statusErr *errors.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}

func TestClient_DecodeError(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding GET /projects response")
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, 0, nil)

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrServerUnreachable))
	assert.Contains(t, errors.UserMessage(err, client.BaseURL()), "Make sure the backend server is running on "+baseURL)

	assert.True(t, errors.Is(client.Ping(context.Background()), errors.ErrServerUnreachable))
}

func TestClient_Ping(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.NoError(t, client.Ping(context.Background()), "any HTTP answer means reachable")
}

func TestClient_RequestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get(RequestIDHeader)] = true
		w.Write([]byte("[]"))
	})

	for i := 0; i < 3; i++ {
		_, err := client.ListProjects(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, seen, 3)
}
