package jira_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-to-jira/internal/model"
	"voice-to-jira/pkg/jira"
)

func newJiraServer(t *testing.T, priorityOK bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/rest/api/3/priority", func(w http.ResponseWriter, r *http.Request) {
		if !priorityOK {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"id": "1", "name": "Highest"},
			{"id": "3", "name": "Medium"},
		})
	})

	mux.HandleFunc("/rest/api/3/issue", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Fields struct {
				Summary  string `json:"summary"`
				Priority struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"priority"`
			} `json:"fields"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Fields.Summary == "boom" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors":{"summary":"invalid"}}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "10001", "key": "PRJ-42"})
	})

	mux.HandleFunc("/rest/api/3/issue/PRJ-42/comment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "555"})
	})

	return httptest.NewServer(mux)
}

func newClient(t *testing.T, baseURL string) *jira.Client {
	t.Helper()
	c, err := jira.New(jira.Config{BaseURL: baseURL, Email: "user@example.com", APIToken: "token"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestCreateIssue(t *testing.T) {
	ts := newJiraServer(t, true)
	defer ts.Close()

	client := newClient(t, ts.URL)
	ctx := context.Background()

	task := model.Task{
		ID:          "abc123",
		Summary:     "Подготовить отчёт",
		Description: "Отчёт по продажам за квартал",
		Labels:      []string{"отчёт", "продажи"},
		Due:         "2025-06-13",
		Priority:    model.PriorityHighest,
	}

	key, err := client.CreateIssue(ctx, "PRJ", task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "PRJ-42" {
		t.Errorf("key = %q, want PRJ-42", key)
	}
}

func TestCreateIssueError(t *testing.T) {
	ts := newJiraServer(t, true)
	defer ts.Close()

	client := newClient(t, ts.URL)
	_, err := client.CreateIssue(context.Background(), "PRJ", model.Task{Summary: "boom"})

	var apiErr *jira.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
}

func TestCreateIssuePriorityLookupFallback(t *testing.T) {
	// Priority endpoint failing must not block issue creation; the priority
	// is submitted by name instead.
	ts := newJiraServer(t, false)
	defer ts.Close()

	client := newClient(t, ts.URL)
	key, err := client.CreateIssue(context.Background(), "PRJ", model.Task{
		Summary:  "Fallback task",
		Priority: model.PriorityLow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "PRJ-42" {
		t.Errorf("key = %q, want PRJ-42", key)
	}
}

func TestAddComment(t *testing.T) {
	ts := newJiraServer(t, true)
	defer ts.Close()

	client := newClient(t, ts.URL)
	if err := client.AddComment(context.Background(), "PRJ-42", "Дополнительный контекст"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Empty comment is a no-op even without a reachable server.
	offline := newClient(t, "http://localhost:59999")
	if err := offline.AddComment(context.Background(), "PRJ-42", "   "); err != nil {
		t.Fatalf("empty comment should be a no-op, got %v", err)
	}
}

func TestPriorityID(t *testing.T) {
	ts := newJiraServer(t, true)
	defer ts.Close()

	client := newClient(t, ts.URL)
	ctx := context.Background()

	id, err := client.PriorityID(ctx, "medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "3" {
		t.Errorf("id = %q, want 3 (case-insensitive match)", id)
	}

	id, err = client.PriorityID(ctx, "Nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Errorf("id = %q, want empty for unknown name", id)
	}
}

func TestLinks(t *testing.T) {
	client := newClient(t, "https://example.atlassian.net/")
	if got := client.IssueURL("PRJ-7"); got != "https://example.atlassian.net/browse/PRJ-7" {
		t.Errorf("IssueURL = %q", got)
	}
	if got := client.ProjectURL("PRJ"); got != "https://example.atlassian.net/jira/core/projects/PRJ/list" {
		t.Errorf("ProjectURL = %q", got)
	}
}
