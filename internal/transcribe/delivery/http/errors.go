package http

import (
	"errors"
	"net/http"

	"voice-to-jira/internal/transcribe"
	pkgErrors "voice-to-jira/pkg/errors"
	"voice-to-jira/pkg/whisper"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcribe.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, transcribe.ErrEmptyAudio), errors.Is(err, transcribe.ErrEmptyResult):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var apiErr *whisper.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "transcription backend failed")
	}
	return pkgErrors.NewHTTPError(http.StatusBadGateway, "transcription unavailable")
}
