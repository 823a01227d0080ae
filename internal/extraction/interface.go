package extraction

import (
	"context"

	"voice-to-jira/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract turns a free-form transcript into a list of canonical task
	// records together with metadata about the generator endpoint that
	// served the request. The returned list is not yet normalized.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// CleanTranscript runs a light generator pass fixing typos, casing and
	// punctuation without changing meaning. Returns the input unchanged when
	// the generator produces nothing usable.
	CleanTranscript(ctx context.Context, text string) (string, GeneratorMeta, error)

	// Normalize guarantees every task has a valid ISO due date and a
	// non-empty label set. Idempotent and safe to re-run after manual edits.
	Normalize(tasks []model.Task, sourceText string) []model.Task
}
