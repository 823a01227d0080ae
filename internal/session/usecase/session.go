package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/model"
	"voice-to-jira/internal/session"
)

// Create implements the session UseCase interface.
func (uc *implUseCase) Create(ctx context.Context, transcript string) (session.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	sess := session.Session{
		ID:         uuid.NewString(),
		Transcript: strings.TrimSpace(transcript),
		Tasks:      []model.Task{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "session.Create.Save: %v", err)
		return session.Session{}, err
	}
	return sess, nil
}

// Get implements the session UseCase interface.
func (uc *implUseCase) Get(ctx context.Context, id string) (session.Session, error) {
	return uc.repo.Get(ctx, id)
}

// SetTranscript implements the session UseCase interface.
func (uc *implUseCase) SetTranscript(ctx context.Context, id, transcript string) (session.Session, error) {
	return uc.mutate(ctx, id, func(sess *session.Session) error {
		sess.Transcript = strings.TrimSpace(transcript)
		return nil
	})
}

// ReplaceTasks implements the session UseCase interface.
func (uc *implUseCase) ReplaceTasks(ctx context.Context, id string, tasks []model.Task, meta extraction.GeneratorMeta) (session.Session, error) {
	return uc.mutate(ctx, id, func(sess *session.Session) error {
		if tasks == nil {
			tasks = []model.Task{}
		}
		sess.Tasks = tasks
		sess.Meta = meta
		return nil
	})
}

// AddTask implements the session UseCase interface.
func (uc *implUseCase) AddTask(ctx context.Context, id string) (session.Session, error) {
	return uc.mutate(ctx, id, func(sess *session.Session) error {
		sess.Tasks = append(sess.Tasks, model.NewTask())
		return nil
	})
}

// UpdateTask implements the session UseCase interface.
func (uc *implUseCase) UpdateTask(ctx context.Context, id, taskID string, input session.UpdateTaskInput) (session.Session, error) {
	return uc.mutate(ctx, id, func(sess *session.Session) error {
		idx := taskIndex(sess.Tasks, taskID)
		if idx < 0 {
			return session.ErrTaskNotFound
		}
		t := sess.Tasks[idx]
		if input.Summary != nil {
			t.Summary = model.TruncateSummary(strings.TrimSpace(*input.Summary))
		}
		if input.Description != nil {
			t.Description = *input.Description
		}
		if input.Labels != nil {
			t.Labels = input.Labels
		}
		if input.Due != nil {
			t.Due = strings.TrimSpace(*input.Due)
		}
		if input.Comment != nil {
			t.Comment = *input.Comment
		}
		if input.Priority != nil {
			t.Priority = model.NormalizePriority(*input.Priority)
		}
		sess.Tasks[idx] = t
		return nil
	})
}

// DeleteTask implements the session UseCase interface.
func (uc *implUseCase) DeleteTask(ctx context.Context, id, taskID string) (session.Session, error) {
	return uc.mutate(ctx, id, func(sess *session.Session) error {
		idx := taskIndex(sess.Tasks, taskID)
		if idx < 0 {
			return session.ErrTaskNotFound
		}
		sess.Tasks = append(sess.Tasks[:idx], sess.Tasks[idx+1:]...)
		return nil
	})
}

// mutate runs one read-modify-write cycle under the usecase lock.
func (uc *implUseCase) mutate(ctx context.Context, id string, fn func(*session.Session) error) (session.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, err := uc.repo.Get(ctx, id)
	if err != nil {
		return session.Session{}, err
	}
	if err := fn(&sess); err != nil {
		return session.Session{}, err
	}
	sess.UpdatedAt = uc.now()
	if err := uc.repo.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "session.mutate.Save: %v", err)
		return session.Session{}, err
	}
	return sess, nil
}

func taskIndex(tasks []model.Task, taskID string) int {
	for i, t := range tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}
