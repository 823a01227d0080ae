// Package jira is a minimal Jira Cloud REST client covering the issue export
// surface: issue creation, post-creation comments, and priority lookup.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"voice-to-jira/internal/model"
)

// Client talks to a Jira Cloud instance.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// New creates a Jira client with the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		apiToken:   cfg.APIToken,
		httpClient: cfg.HTTPClient,
	}, nil
}

// CreateIssue creates a Task-type issue from a canonical task record and
// returns the created issue key. The priority is submitted by id when the
// lookup succeeds and by name otherwise.
func (c *Client) CreateIssue(ctx context.Context, project string, t model.Task) (string, error) {
	summary := t.Summary
	if strings.TrimSpace(summary) == "" {
		summary = "Задача"
	}

	fields := issueFields{
		Project:   projectRef{Key: project},
		Summary:   model.TruncateSummary(summary),
		IssueType: issueType{Name: "Task"},
		Labels:    t.Labels,
		DueDate:   t.Due,
	}

	pr := t.Priority
	if pr == "" {
		pr = model.PriorityMedium
	}
	if id, err := c.PriorityID(ctx, pr); err == nil && id != "" {
		fields.Priority = priorityRef{ID: id}
	} else {
		fields.Priority = priorityRef{Name: pr}
	}

	if desc := strings.TrimSpace(t.Description); desc != "" {
		doc := adfParagraph(desc)
		fields.Description = &doc
	}

	raw, err := c.do(ctx, http.MethodPost, "/rest/api/3/issue", createIssueRequest{Fields: fields})
	if err != nil {
		return "", err
	}

	var created createIssueResponse
	if err := json.Unmarshal(raw, &created); err != nil {
		return "", fmt.Errorf("jira: failed to decode create response: %w", err)
	}
	if created.Key != "" {
		return created.Key, nil
	}
	return created.ID, nil
}

// AddComment attaches a comment to an already-created issue. Empty text is a
// no-op.
func (c *Client) AddComment(ctx context.Context, issueKey, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	path := fmt.Sprintf("/rest/api/3/issue/%s/comment", issueKey)
	_, err := c.do(ctx, http.MethodPost, path, commentRequest{Body: adfParagraph(text)})
	return err
}

// PriorityID resolves a priority name to the tracker's internal id. A failed
// lookup returns an empty id without error only when the name is unknown;
// transport failures are returned to the caller, who falls back to submitting
// by name.
func (c *Client) PriorityID(ctx context.Context, name string) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/rest/api/3/priority", nil)
	if err != nil {
		return "", err
	}

	var entries []priorityEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return "", fmt.Errorf("jira: failed to decode priority list: %w", err)
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e.ID, nil
		}
	}
	return "", nil
}

// IssueURL returns the browse link for an issue key.
func (c *Client) IssueURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// ProjectURL returns the project list view link.
func (c *Client) ProjectURL(projectKey string) string {
	return fmt.Sprintf("%s/jira/core/projects/%s/list", c.baseURL, projectKey)
}

// do executes an authenticated JSON request. Non-success statuses become an
// *APIError carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("jira: failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("jira: failed to create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jira: failed to read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
