package transcribe

import "errors"

// Domain-specific errors for the transcribe package.
var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrEmptyAudio        = errors.New("audio stream is empty")
	ErrEmptyResult       = errors.New("transcription produced no text")
)
