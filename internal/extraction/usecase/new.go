package usecase

import (
	"sync"

	"voice-to-jira/pkg/dateparse"
	"voice-to-jira/pkg/llamagen"
	pkgLog "voice-to-jira/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	gen      llamagen.IGenerator
	resolver *dateparse.Resolver

	// Discovery is a one-shot configuration step; a successful result is
	// cached and reused across extraction calls.
	mu       sync.Mutex
	endpoint llamagen.Endpoint
	haveEP   bool
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, gen llamagen.IGenerator, resolver *dateparse.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		gen:      gen,
		resolver: resolver,
	}
}
