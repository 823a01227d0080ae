package tracker

import (
	"context"

	"voice-to-jira/internal/model"
)

// UseCase defines the business logic interface for the tracker domain.
type UseCase interface {
	// CreateBulk exports a task list to the issue tracker. Failures are
	// collected per task; one bad task never aborts the batch.
	CreateBulk(ctx context.Context, input CreateBulkInput) (CreateBulkOutput, error)
}

// IssueTracker is the client contract for the external tracker. *jira.Client
// implements it.
type IssueTracker interface {
	CreateIssue(ctx context.Context, project string, t model.Task) (string, error)
	AddComment(ctx context.Context, issueKey, text string) error
	IssueURL(key string) string
	ProjectURL(projectKey string) string
}
