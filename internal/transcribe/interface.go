package transcribe

import (
	"context"
	"io"
)

// UseCase defines the business logic interface for the transcription domain.
type UseCase interface {
	// Transcribe validates the upload and returns the recognized text.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)
}

// TranscribeInput is one uploaded recording.
type TranscribeInput struct {
	Filename string
	Audio    io.Reader

	// Language is an optional hint for the recognizer (ru, en, kk, tr).
	// Empty or "auto" leaves detection to the backend.
	Language string
}

// TranscribeOutput is the recognized text.
type TranscribeOutput struct {
	Text string `json:"text"`
}
