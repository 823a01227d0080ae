package usecase

import (
	"strings"

	"voice-to-jira/internal/model"
	"voice-to-jira/pkg/dateparse"
	"voice-to-jira/pkg/labels"
)

// Normalize guarantees post-conditions on a task list before it is shown to
// the user or submitted: every due is a valid ISO date and every task has at
// least one label. Already-valid tasks pass through unchanged, so running it
// twice is a no-op.
func (uc *implUseCase) Normalize(tasks []model.Task, sourceText string) []model.Task {
	return normalizeTasks(uc.resolver, tasks, sourceText)
}

func normalizeTasks(resolver *dateparse.Resolver, tasks []model.Task, sourceText string) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.Summary = model.TruncateSummary(t.Summary)
		t.Priority = model.NormalizePriority(t.Priority)

		if resolver.ResolveExplicit(t.Due) == "" {
			due := ""
			if strings.TrimSpace(t.Due) != "" {
				due = resolver.ResolveRelative(t.Due)
			}
			if due == "" {
				due = resolver.InferFromText(t.Description + " " + sourceText)
			}
			t.Due = due
		}

		if len(t.Labels) == 0 {
			t.Labels = labels.Derive(t.Summary)
		}
		if t.ID == "" {
			t.ID = model.NewTaskID()
		}
		out[i] = t
	}
	return out
}
