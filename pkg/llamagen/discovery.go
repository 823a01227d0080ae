package llamagen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Models lists model identifiers served by the endpoint via GET /v1/models.
func (c *client) Models(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ModelsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("llamagen: failed to create models request: %w", err)
	}
	if c.manualAuth {
		req.Header.Set(c.authHeader, c.authScheme+" "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamagen: models request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var list modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("llamagen: failed to decode models response: %w", err)
	}

	out := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		if m.ID != "" {
			out = append(out, m.ID)
		}
	}
	return out, nil
}

// Discover selects a working endpoint. An explicit URL override wins; its
// mode is derived from the path. Otherwise the model list is ranked and the
// chat-style path is probed first, then the responses-style path. Discovery
// is one-shot: zero reachable paths yields ErrEndpointUnavailable.
func (c *client) Discover(ctx context.Context) (Endpoint, error) {
	if c.url != "" {
		mode, ok := modeFromPath(c.url)
		if !ok {
			return Endpoint{}, ErrEndpointUnavailable
		}
		model := c.model
		if model == "" {
			model = FallbackModel
		}
		return Endpoint{Mode: mode, URL: c.url, Model: model}, nil
	}

	models, err := c.Models(ctx)
	if err != nil {
		models = nil // list failures are non-fatal; probing decides
	}

	model := pickModel(models, c.model)
	if model == "" {
		model = FallbackModel
	}

	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	chatURL := c.baseURL + ChatPath
	if c.probe(probeCtx, chatURL, ModeChat, model) {
		return Endpoint{Mode: ModeChat, URL: chatURL, Model: model}, nil
	}

	respURL := c.baseURL + ResponsesPath
	if c.probe(probeCtx, respURL, ModeResponses, model) {
		return Endpoint{Mode: ModeResponses, URL: respURL, Model: model}, nil
	}

	return Endpoint{}, ErrEndpointUnavailable
}

// probe sends a minimal ping request and reports whether the path answered
// with success.
func (c *client) probe(ctx context.Context, url string, mode Mode, model string) bool {
	msgs := []chatMessage{{Role: "user", Content: "ping"}}

	var payload any
	if mode == ModeResponses {
		payload = responsesRequest{Model: model, Input: msgs, Temperature: 0.1}
	} else {
		payload = chatRequest{Model: model, Messages: msgs, Temperature: 0.1}
	}

	_, err := c.postJSON(ctx, url, payload)
	return err == nil
}

// pickModel ranks reported models, preferring an exact (then case-folded)
// match of the configured model, then instruct/chat-tuned llama builds.
func pickModel(models []string, prefer string) string {
	if prefer != "" {
		for _, m := range models {
			if m == prefer {
				return m
			}
		}
		low := strings.ToLower(prefer)
		for _, m := range models {
			if strings.ToLower(m) == low {
				return m
			}
		}
		// Trust the configured model when the endpoint lists nothing.
		if len(models) == 0 {
			return prefer
		}
	}

	type ranked struct {
		score int
		name  string
	}
	rankedModels := make([]ranked, 0, len(models))
	for _, m := range models {
		ml := strings.ToLower(m)
		score := 0
		if strings.Contains(ml, "instruct") || strings.Contains(ml, "chat") {
			score += 3
		}
		if strings.Contains(ml, "llama") {
			score += 2
		}
		if strings.Contains(ml, "scout") {
			score++
		}
		if strings.Contains(ml, "fp8") {
			score++
		}
		rankedModels = append(rankedModels, ranked{score: score, name: m})
	}
	sort.Slice(rankedModels, func(i, j int) bool {
		if rankedModels[i].score != rankedModels[j].score {
			return rankedModels[i].score > rankedModels[j].score
		}
		return rankedModels[i].name < rankedModels[j].name
	})

	if len(rankedModels) == 0 {
		return ""
	}
	return rankedModels[0].name
}

func modeFromPath(url string) (Mode, bool) {
	switch {
	case strings.Contains(url, "/chat/completions"):
		return ModeChat, true
	case strings.Contains(url, "/responses"):
		return ModeResponses, true
	default:
		return "", false
	}
}
