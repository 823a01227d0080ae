package llamagen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newClient(cfg Config) *client {
	manual := cfg.APIKey != "" &&
		(cfg.AuthHeader != DefaultAuthHeader || cfg.AuthScheme != DefaultAuthScheme)
	return &client{
		baseURL:    cfg.BaseURL,
		url:        cfg.URL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		authHeader: cfg.AuthHeader,
		authScheme: cfg.AuthScheme,
		httpClient: cfg.HTTPClient,
		manualAuth: manual,
	}
}

// Generate sends a completion request in the endpoint's shape and returns the
// raw generated text.
func (c *client) Generate(ctx context.Context, ep Endpoint, system, user string) (string, error) {
	msgs := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}

	var payload any
	if ep.Mode == ModeResponses {
		payload = responsesRequest{
			Model:       ep.Model,
			Input:       msgs,
			Temperature: DefaultTemperature,
			MaxTokens:   DefaultMaxTokens,
		}
	} else {
		payload = chatRequest{
			Model:       ep.Model,
			Messages:    msgs,
			Temperature: DefaultTemperature,
			MaxTokens:   DefaultMaxTokens,
		}
	}

	raw, err := c.postJSON(ctx, ep.URL, payload)
	if err != nil {
		return "", err
	}

	if ep.Mode == ModeResponses {
		return decodeResponsesText(raw)
	}
	return decodeChatText(raw)
}

// postJSON posts a JSON payload and returns the response body. Non-success
// statuses become a *RequestError carrying the body verbatim.
func (c *client) postJSON(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("llamagen: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("llamagen: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.manualAuth {
		req.Header.Set(c.authHeader, c.authScheme+" "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{StatusCode: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("llamagen: failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

func decodeChatText(raw []byte) (string, error) {
	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("llamagen: failed to decode chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llamagen: chat response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func decodeResponsesText(raw []byte) (string, error) {
	var resp responsesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("llamagen: failed to decode responses payload: %w", err)
	}
	if resp.OutputText != "" {
		return resp.OutputText, nil
	}

	items := resp.Output
	if len(items) == 0 {
		items = resp.Choices
	}
	if len(items) == 0 {
		return "", fmt.Errorf("llamagen: responses payload contained no output")
	}

	first := items[0]
	var content string
	if err := json.Unmarshal(first.Content, &content); err == nil && content != "" {
		return content, nil
	}
	if first.Message.Content != "" {
		return first.Message.Content, nil
	}
	return "", fmt.Errorf("llamagen: responses payload contained no text content")
}
