package usecase

import (
	"sync"
	"time"

	"voice-to-jira/internal/session/repository"
	pkgLog "voice-to-jira/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.SessionRepository

	// Guards read-modify-write cycles on individual sessions. The store
	// itself is concurrency-safe but task edits are not atomic without it.
	mu sync.Mutex

	now func() time.Time
}

// New creates a new session UseCase instance.
func New(l pkgLog.Logger, repo repository.SessionRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}
