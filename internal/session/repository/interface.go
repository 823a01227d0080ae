package repository

import (
	"context"

	"voice-to-jira/internal/session"
)

// SessionRepository is the interface for session storage. Implementations may
// evict old sessions; callers must treat a miss as an expired session.
type SessionRepository interface {
	Save(ctx context.Context, s session.Session) error
	Get(ctx context.Context, id string) (session.Session, error)
	Delete(ctx context.Context, id string) error
	Len() int
}
