package http

import (
	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/session"
	"voice-to-jira/internal/tracker"
	pkgLog "voice-to-jira/pkg/log"
)

type handler struct {
	l            pkgLog.Logger
	sessionUC    session.UseCase
	extractionUC extraction.UseCase
	trackerUC    tracker.UseCase

	// defaultProject is used when a submit request does not name one.
	defaultProject string
}

// New creates a new HTTP handler for the session domain.
func New(l pkgLog.Logger, sessionUC session.UseCase, extractionUC extraction.UseCase, trackerUC tracker.UseCase, defaultProject string) *handler {
	return &handler{
		l:              l,
		sessionUC:      sessionUC,
		extractionUC:   extractionUC,
		trackerUC:      trackerUC,
		defaultProject: defaultProject,
	}
}
