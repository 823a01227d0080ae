// Package whisper is a client for OpenAI-compatible audio transcription
// endpoints (whisper.cpp server, faster-whisper, the OpenAI API itself).
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// ITranscriber is the client contract for audio transcription.
type ITranscriber interface {
	// Transcribe uploads one audio file and returns the recognized text.
	// An empty or "auto" language leaves detection to the backend.
	Transcribe(ctx context.Context, filename, language string, audio io.Reader) (string, error)
}

type client struct {
	url        string
	model      string
	httpClient *http.Client
}

// New creates a transcription client with the given configuration.
func New(cfg Config) (ITranscriber, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{url: cfg.URL, model: cfg.Model, httpClient: cfg.HTTPClient}, nil
}

// Transcribe implements ITranscriber.
func (c *client) Transcribe(ctx context.Context, filename, language string, audio io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to build form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("whisper: failed to read audio: %w", err)
	}
	if c.model != "" {
		if err := mw.WriteField("model", c.model); err != nil {
			return "", fmt.Errorf("whisper: failed to build form: %w", err)
		}
	}
	if language != "" && language != LanguageAuto {
		if err := mw.WriteField("language", language); err != nil {
			return "", fmt.Errorf("whisper: failed to build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("whisper: failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	// JSON endpoints answer {"text": ...}; plain-text servers answer the
	// transcript directly.
	var decoded transcriptionResponse
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Text != "" {
		return strings.TrimSpace(decoded.Text), nil
	}
	return strings.TrimSpace(string(raw)), nil
}
