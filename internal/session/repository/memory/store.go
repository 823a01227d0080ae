package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"voice-to-jira/internal/session"
	"voice-to-jira/internal/session/repository"
)

// DefaultCapacity bounds the number of live sessions; the least recently used
// one is evicted when the cap is reached.
const DefaultCapacity = 256

type implStore struct {
	cache *lru.Cache[string, session.Session]
}

// New creates an in-memory LRU-bounded session store. A capacity below one
// falls back to DefaultCapacity.
func New(capacity int) (repository.SessionRepository, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, session.Session](capacity)
	if err != nil {
		return nil, err
	}
	return &implStore{cache: cache}, nil
}

func (s *implStore) Save(ctx context.Context, sess session.Session) error {
	s.cache.Add(sess.ID, sess)
	return nil
}

func (s *implStore) Get(ctx context.Context, id string) (session.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return sess, nil
}

func (s *implStore) Delete(ctx context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}

func (s *implStore) Len() int {
	return s.cache.Len()
}
