package llamagen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// ErrEndpointUnavailable indicates discovery could not confirm any reachable
// generator endpoint.
var ErrEndpointUnavailable = errors.New("llamagen: no reachable generator endpoint")

// RequestError is a generator HTTP call that returned a non-success status.
// The response body is carried verbatim for the caller to surface.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("llamagen: request failed with status %d: %s", e.StatusCode, e.Body)
}

// Mode distinguishes the two completion request shapes the endpoint may serve.
type Mode string

const (
	ModeChat      Mode = "chat"
	ModeResponses Mode = "responses"
)

// Endpoint is a confirmed generation target produced by discovery.
type Endpoint struct {
	Mode  Mode
	URL   string
	Model string
}

// Config holds generator client configuration.
type Config struct {
	BaseURL    string // endpoint root, e.g. https://host:8000
	URL        string // full completion URL override; skips probing when set
	Model      string // preferred model id (optional)
	APIKey     string
	AuthHeader string // defaults to Authorization
	AuthScheme string // defaults to Bearer
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Validate validates the configuration and fills defaults. With the standard
// Authorization/Bearer pair the HTTP client injects the token via an oauth2
// static token source; custom header schemes are set per request instead.
func (c *Config) Validate() error {
	if c.BaseURL == "" && c.URL == "" {
		return fmt.Errorf("llamagen: BaseURL or URL is required")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.AuthHeader == "" {
		c.AuthHeader = DefaultAuthHeader
	}
	if c.AuthScheme == "" {
		c.AuthScheme = DefaultAuthScheme
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		if c.APIKey != "" && c.AuthHeader == DefaultAuthHeader && c.AuthScheme == DefaultAuthScheme {
			src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.APIKey, TokenType: c.AuthScheme})
			c.HTTPClient = oauth2.NewClient(context.Background(), src)
		} else {
			c.HTTPClient = &http.Client{}
		}
		c.HTTPClient.Timeout = c.Timeout
	}
	return nil
}

// client is the internal implementation of IGenerator.
type client struct {
	baseURL    string
	url        string
	model      string
	apiKey     string
	authHeader string
	authScheme string
	httpClient *http.Client
	manualAuth bool // set the auth header per request (non-standard pair)
}

// ---- Wire types (OpenAI-compatible) ----

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type responsesRequest struct {
	Model       string        `json:"model"`
	Input       []chatMessage `json:"input"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// responseItem tolerates both a direct content field and a nested message.
type responseItem struct {
	Content json.RawMessage `json:"content"`
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type responsesResponse struct {
	OutputText string         `json:"output_text"`
	Output     []responseItem `json:"output"`
	Choices    []responseItem `json:"choices"`
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}
