package whisper

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config holds the transcription endpoint configuration.
type Config struct {
	// URL is the full endpoint URL of an OpenAI-compatible transcription
	// service, e.g. http://host:9000/v1/audio/transcriptions.
	URL string

	// Model is the model identifier sent with each request. Optional; some
	// servers run a single fixed model.
	Model string

	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("whisper: endpoint URL is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// APIError is a non-success response from the transcription endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whisper: endpoint returned %d: %s", e.StatusCode, e.Body)
}

// DefaultTimeout bounds a transcription request. Long recordings take a
// while to decode server-side.
const DefaultTimeout = 300 * time.Second

// LanguageAuto requests backend-side language detection; the language field
// is omitted from the upload.
const LanguageAuto = "auto"

type transcriptionResponse struct {
	Text string `json:"text"`
}
