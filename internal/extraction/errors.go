package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyTranscript = errors.New("transcript text is empty")

	// ErrMalformedResponse indicates the generator output did not contain a
	// parseable JSON task array. The raw output is attached by the wrapping
	// error so the caller can surface it verbatim.
	ErrMalformedResponse = errors.New("generator response did not contain a JSON task array")
)
