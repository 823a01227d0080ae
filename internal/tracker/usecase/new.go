package usecase

import (
	"golang.org/x/time/rate"

	"voice-to-jira/internal/tracker"
	"voice-to-jira/pkg/dateparse"
	pkgLog "voice-to-jira/pkg/log"
)

// DefaultRatePerMinute bounds issue-creation calls so bulk exports stay under
// the Jira Cloud per-user limits.
const DefaultRatePerMinute = 60

type implUseCase struct {
	l        pkgLog.Logger
	client   tracker.IssueTracker
	resolver *dateparse.Resolver
	limiter  *rate.Limiter
}

// New creates a new tracker UseCase instance. ratePerMinute below one falls
// back to DefaultRatePerMinute.
func New(l pkgLog.Logger, client tracker.IssueTracker, resolver *dateparse.Resolver, ratePerMinute int) *implUseCase {
	if ratePerMinute < 1 {
		ratePerMinute = DefaultRatePerMinute
	}
	return &implUseCase{
		l:        l,
		client:   client,
		resolver: resolver,
		limiter:  rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), 1),
	}
}
