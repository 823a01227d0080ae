package usecase

import (
	"context"
	"strings"

	"voice-to-jira/internal/extraction"
)

// CleanTranscript implements the extraction UseCase interface.
func (uc *implUseCase) CleanTranscript(ctx context.Context, text string) (string, extraction.GeneratorMeta, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", extraction.GeneratorMeta{}, extraction.ErrEmptyTranscript
	}

	ep, err := uc.activeEndpoint(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.CleanTranscript.activeEndpoint: %v", err)
		return "", extraction.GeneratorMeta{}, err
	}
	meta := metaFor(ep)

	cleaned, err := uc.gen.Generate(ctx, ep, cleanInstruction, trimmed)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.CleanTranscript.Generate: %v", err)
		return "", meta, err
	}

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		// Better a raw transcript than an empty editor.
		return trimmed, meta, nil
	}
	return cleaned, meta, nil
}
