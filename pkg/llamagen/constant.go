package llamagen

import "time"

const (
	// ChatPath is the chat-style completion endpoint.
	ChatPath = "/v1/chat/completions"

	// ResponsesPath is the alternate-style completion endpoint.
	ResponsesPath = "/v1/responses"

	// ModelsPath lists models served by the endpoint.
	ModelsPath = "/v1/models"

	// FallbackModel is used when the endpoint does not report any model.
	FallbackModel = "llama"

	// DefaultTemperature keeps generation near-deterministic for JSON output.
	DefaultTemperature = 0.15

	// DefaultMaxTokens bounds a single generation.
	DefaultMaxTokens = 4000

	// DefaultTimeout is the HTTP client timeout for generation requests.
	DefaultTimeout = 180 * time.Second

	// ProbeTimeout bounds each of the two discovery probe requests.
	ProbeTimeout = 25 * time.Second

	// DefaultAuthHeader and DefaultAuthScheme form the standard bearer pair.
	DefaultAuthHeader = "Authorization"
	DefaultAuthScheme = "Bearer"
)
