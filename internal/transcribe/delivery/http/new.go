package http

import (
	"voice-to-jira/internal/transcribe"
	pkgLog "voice-to-jira/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc transcribe.UseCase
}

// New creates a new HTTP handler for the transcription domain.
func New(l pkgLog.Logger, uc transcribe.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
