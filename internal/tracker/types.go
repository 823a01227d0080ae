package tracker

import "voice-to-jira/internal/model"

// CreateBulkInput is the input for a bulk export.
type CreateBulkInput struct {
	Project string
	Tasks   []model.Task
}

// ItemResult is the outcome for one task in a bulk export.
type ItemResult struct {
	TaskID   string `json:"task_id"`
	Summary  string `json:"summary"`
	IssueKey string `json:"issue_key,omitempty"`
	IssueURL string `json:"issue_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CreateBulkOutput is the result of a bulk export.
type CreateBulkOutput struct {
	Results    []ItemResult `json:"results"`
	Created    int          `json:"created"`
	Failed     int          `json:"failed"`
	ProjectURL string       `json:"project_url"`
}
