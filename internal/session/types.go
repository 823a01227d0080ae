package session

import (
	"time"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/model"
)

// Session is one editing workspace: a transcript plus the task list being
// refined before submission.
type Session struct {
	ID         string                   `json:"id"`
	Transcript string                   `json:"transcript"`
	Tasks      []model.Task             `json:"tasks"`
	Meta       extraction.GeneratorMeta `json:"meta"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

// UpdateTaskInput carries a partial task edit. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Summary     *string  `json:"summary"`
	Description *string  `json:"description"`
	Labels      []string `json:"labels"`
	Due         *string  `json:"due"`
	Comment     *string  `json:"comment"`
	Priority    *string  `json:"priority"`
}
