package http

import (
	"voice-to-jira/internal/model"
	"voice-to-jira/internal/session"
	"voice-to-jira/internal/tracker"
	"voice-to-jira/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Transcript string `json:"transcript"`
}

type transcriptReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

type updateTaskReq struct {
	Summary     *string  `json:"summary"`
	Description *string  `json:"description"`
	Labels      []string `json:"labels"`
	Due         *string  `json:"due"`
	Comment     *string  `json:"comment"`
	Priority    *string  `json:"priority"`
}

func (r updateTaskReq) toInput() session.UpdateTaskInput {
	return session.UpdateTaskInput{
		Summary:     r.Summary,
		Description: r.Description,
		Labels:      r.Labels,
		Due:         r.Due,
		Comment:     r.Comment,
		Priority:    r.Priority,
	}
}

type submitReq struct {
	Project string `json:"project"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	Due         string   `json:"due"`
	Comment     string   `json:"comment"`
	Priority    string   `json:"priority"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Summary:     t.Summary,
		Description: t.Description,
		Labels:      t.Labels,
		Due:         t.Due,
		Comment:     t.Comment,
		Priority:    t.Priority,
	}
}

type sessionResp struct {
	ID         string            `json:"id"`
	Transcript string            `json:"transcript"`
	Tasks      []taskResp        `json:"tasks"`
	Generator  generatorResp     `json:"generator"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
}

type generatorResp struct {
	Mode  string `json:"mode"`
	URL   string `json:"url"`
	Model string `json:"model"`
}

func newSessionResp(s session.Session) sessionResp {
	tasks := make([]taskResp, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return sessionResp{
		ID:         s.ID,
		Transcript: s.Transcript,
		Tasks:      tasks,
		Generator: generatorResp{
			Mode:  s.Meta.Mode,
			URL:   s.Meta.URL,
			Model: s.Meta.Model,
		},
		CreatedAt: response.DateTime(s.CreatedAt),
		UpdatedAt: response.DateTime(s.UpdatedAt),
	}
}

type submitItemResp struct {
	TaskID   string `json:"task_id"`
	Summary  string `json:"summary"`
	IssueKey string `json:"issue_key,omitempty"`
	IssueURL string `json:"issue_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

type submitResp struct {
	Results    []submitItemResp `json:"results"`
	Created    int              `json:"created"`
	Failed     int              `json:"failed"`
	ProjectURL string           `json:"project_url"`
}

func newSubmitResp(out tracker.CreateBulkOutput) submitResp {
	results := make([]submitItemResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = submitItemResp{
			TaskID:   r.TaskID,
			Summary:  r.Summary,
			IssueKey: r.IssueKey,
			IssueURL: r.IssueURL,
			Error:    r.Error,
		}
	}
	return submitResp{
		Results:    results,
		Created:    out.Created,
		Failed:     out.Failed,
		ProjectURL: out.ProjectURL,
	}
}
