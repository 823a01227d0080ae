package usecase

import (
	"context"
	"strings"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/pkg/llamagen"
)

// Extract implements the extraction UseCase interface.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyTranscript
	}

	ep, err := uc.activeEndpoint(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.Extract.activeEndpoint: %v", err)
		return extraction.ExtractOutput{}, err
	}
	meta := metaFor(ep)

	raw, err := uc.gen.Generate(ctx, ep, buildExtractionInstruction(uc.resolver), transcript)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.Extract.Generate: %v", err)
		return extraction.ExtractOutput{Meta: meta}, err
	}

	tasks, err := parseTasks(raw, uc.resolver)
	if err != nil {
		uc.l.Warnf(ctx, "extraction.Extract.parseTasks: %v", err)
		return extraction.ExtractOutput{Meta: meta}, err
	}

	// A single task for a transcript full of connectors usually means the
	// generator ignored the splitting rule; fall back to the heuristic.
	if len(tasks) == 1 {
		tasks = maybeSplit(tasks[0], uc.resolver)
	}

	uc.l.Infof(ctx, "extraction.Extract: %d task(s) via %s %s", len(tasks), ep.Mode, ep.Model)
	return extraction.ExtractOutput{Tasks: tasks, Meta: meta}, nil
}

// activeEndpoint returns the cached generator endpoint, running discovery on
// first use. A failed discovery is not cached so the next call retries.
func (uc *implUseCase) activeEndpoint(ctx context.Context) (llamagen.Endpoint, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.haveEP {
		return uc.endpoint, nil
	}
	ep, err := uc.gen.Discover(ctx)
	if err != nil {
		return llamagen.Endpoint{}, err
	}
	uc.endpoint = ep
	uc.haveEP = true
	return ep, nil
}

func metaFor(ep llamagen.Endpoint) extraction.GeneratorMeta {
	return extraction.GeneratorMeta{
		Mode:  string(ep.Mode),
		URL:   ep.URL,
		Model: ep.Model,
	}
}
