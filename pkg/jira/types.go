package jira

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout is the HTTP client timeout for issue operations.
const DefaultTimeout = 60 * time.Second

// Config holds Jira client configuration. Authentication is basic auth with
// an account email and API token.
type Config struct {
	BaseURL    string
	Email      string
	APIToken   string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("jira: BaseURL is required")
	}
	if c.Email == "" || c.APIToken == "" {
		return fmt.Errorf("jira: Email and APIToken are required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// APIError is a Jira call that returned a non-success status. The body is
// kept verbatim so bulk submission can report it per item.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira: API error %d: %s", e.StatusCode, e.Body)
}

// ---- Wire types (Jira REST API v3) ----

type createIssueRequest struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project     projectRef  `json:"project"`
	Summary     string      `json:"summary"`
	IssueType   issueType   `json:"issuetype"`
	Labels      []string    `json:"labels,omitempty"`
	DueDate     string      `json:"duedate,omitempty"`
	Priority    priorityRef `json:"priority"`
	Description *adfDoc     `json:"description,omitempty"`
}

type projectRef struct {
	Key string `json:"key"`
}

type issueType struct {
	Name string `json:"name"`
}

// priorityRef carries either the looked-up priority id or the bare name when
// the lookup failed.
type priorityRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type createIssueResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

type commentRequest struct {
	Body adfDoc `json:"body"`
}

type priorityEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ---- Atlassian Document Format ----

type adfDoc struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []adfNode `json:"content,omitempty"`
}

// adfParagraph wraps plain text in a minimal ADF document.
func adfParagraph(text string) adfDoc {
	return adfDoc{
		Type:    "doc",
		Version: 1,
		Content: []adfNode{
			{
				Type:    "paragraph",
				Content: []adfNode{{Type: "text", Text: text}},
			},
		},
	}
}
