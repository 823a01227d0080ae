package llamagen

import "context"

// IGenerator is the client contract for the external text-generation
// endpoint. Implementations are safe for concurrent use. Generator output is
// untrusted plain text; callers must validate it themselves.
type IGenerator interface {
	// Discover selects a working endpoint and model. It performs at most two
	// probe requests (chat-style, then responses-style) and returns
	// ErrEndpointUnavailable when neither answers. The result may be cached
	// and reused across calls.
	Discover(ctx context.Context) (Endpoint, error)

	// Generate sends a system instruction and user text to the discovered
	// endpoint and returns the raw generated text.
	Generate(ctx context.Context, ep Endpoint, system, user string) (string, error)

	// Models lists model identifiers reported by the endpoint.
	Models(ctx context.Context) ([]string, error)
}

// New creates a generator client with the given configuration.
func New(cfg Config) (IGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
