package http

import (
	"errors"
	"net/http"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/session"
	"voice-to-jira/internal/tracker"
	pkgErrors "voice-to-jira/pkg/errors"
	"voice-to-jira/pkg/llamagen"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, session.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, extraction.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "transcript is empty")
	case errors.Is(err, extraction.ErrMalformedResponse):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, llamagen.ErrEndpointUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "generator endpoint unavailable")
	case errors.Is(err, tracker.ErrNoTasks), errors.Is(err, tracker.ErrMissingProject):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var reqErr *llamagen.RequestError
	if errors.As(err, &reqErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "generator request failed")
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
}
