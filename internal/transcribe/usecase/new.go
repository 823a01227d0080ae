package usecase

import (
	pkgLog "voice-to-jira/pkg/log"
	"voice-to-jira/pkg/whisper"
)

type implUseCase struct {
	l      pkgLog.Logger
	client whisper.ITranscriber
}

// New creates a new transcribe UseCase instance.
func New(l pkgLog.Logger, client whisper.ITranscriber) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
	}
}
