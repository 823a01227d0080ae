package session

import (
	"context"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/model"
)

// UseCase defines the business logic interface for the session domain.
type UseCase interface {
	// Create opens a fresh editing session, optionally seeded with a
	// transcript.
	Create(ctx context.Context, transcript string) (Session, error)

	// Get returns a session by id.
	Get(ctx context.Context, id string) (Session, error)

	// SetTranscript replaces the session transcript, keeping the task list.
	SetTranscript(ctx context.Context, id, transcript string) (Session, error)

	// ReplaceTasks swaps the whole task list and records which generator
	// endpoint produced it, typically after an extraction run.
	ReplaceTasks(ctx context.Context, id string, tasks []model.Task, meta extraction.GeneratorMeta) (Session, error)

	// AddTask appends an empty task skeleton for manual entry.
	AddTask(ctx context.Context, id string) (Session, error)

	// UpdateTask applies a partial edit to one task. Summary length and
	// priority are re-validated on every edit.
	UpdateTask(ctx context.Context, id, taskID string, input UpdateTaskInput) (Session, error)

	// DeleteTask removes one task from the session.
	DeleteTask(ctx context.Context, id, taskID string) (Session, error)
}
