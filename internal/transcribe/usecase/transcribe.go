package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"voice-to-jira/internal/transcribe"
)

// supportedExtensions lists the container formats accepted for upload. Video
// containers are included; the transcription backend extracts the audio track.
var supportedExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
}

// Transcribe implements the transcribe UseCase interface.
func (uc *implUseCase) Transcribe(ctx context.Context, input transcribe.TranscribeInput) (transcribe.TranscribeOutput, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !supportedExtensions[ext] {
		return transcribe.TranscribeOutput{}, transcribe.ErrUnsupportedFormat
	}
	if input.Audio == nil {
		return transcribe.TranscribeOutput{}, transcribe.ErrEmptyAudio
	}

	lang := strings.ToLower(strings.TrimSpace(input.Language))
	text, err := uc.client.Transcribe(ctx, input.Filename, lang, input.Audio)
	if err != nil {
		uc.l.Errorf(ctx, "transcribe.Transcribe %q: %v", input.Filename, err)
		return transcribe.TranscribeOutput{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return transcribe.TranscribeOutput{}, transcribe.ErrEmptyResult
	}

	uc.l.Infof(ctx, "transcribe.Transcribe %q: %d chars", input.Filename, len(text))
	return transcribe.TranscribeOutput{Text: text}, nil
}
