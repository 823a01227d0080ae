package usecase

import (
	"context"
	"strings"

	"voice-to-jira/internal/model"
	"voice-to-jira/internal/tracker"
)

// CreateBulk implements the tracker UseCase interface.
func (uc *implUseCase) CreateBulk(ctx context.Context, input tracker.CreateBulkInput) (tracker.CreateBulkOutput, error) {
	project := strings.TrimSpace(input.Project)
	if project == "" {
		return tracker.CreateBulkOutput{}, tracker.ErrMissingProject
	}
	if len(input.Tasks) == 0 {
		return tracker.CreateBulkOutput{}, tracker.ErrNoTasks
	}

	out := tracker.CreateBulkOutput{
		Results:    make([]tracker.ItemResult, 0, len(input.Tasks)),
		ProjectURL: uc.client.ProjectURL(project),
	}

	for _, t := range input.Tasks {
		res := tracker.ItemResult{TaskID: t.ID, Summary: t.Summary}

		if err := uc.limiter.Wait(ctx); err != nil {
			res.Error = err.Error()
			out.Results = append(out.Results, res)
			out.Failed++
			continue
		}

		key, err := uc.client.CreateIssue(ctx, project, uc.prepare(t))
		if err != nil {
			uc.l.Errorf(ctx, "tracker.CreateBulk.CreateIssue %q: %v", t.Summary, err)
			res.Error = err.Error()
			out.Results = append(out.Results, res)
			out.Failed++
			continue
		}

		res.IssueKey = key
		res.IssueURL = uc.client.IssueURL(key)
		out.Created++

		if strings.TrimSpace(t.Comment) != "" {
			if err := uc.client.AddComment(ctx, key, t.Comment); err != nil {
				// The issue exists; a lost comment is reported, not fatal.
				uc.l.Warnf(ctx, "tracker.CreateBulk.AddComment %s: %v", key, err)
				res.Error = "comment: " + err.Error()
			}
		}

		out.Results = append(out.Results, res)
	}

	uc.l.Infof(ctx, "tracker.CreateBulk: %d created, %d failed in %s", out.Created, out.Failed, project)
	return out, nil
}

// prepare re-validates a task just before submission. Manual edits can leave
// the due field blank or holding a relative phrase; it is resolved here so
// Jira always receives a calendar date.
func (uc *implUseCase) prepare(t model.Task) model.Task {
	t.Summary = model.TruncateSummary(t.Summary)
	t.Priority = model.NormalizePriority(t.Priority)

	if t.Due == "" {
		t.Due = uc.resolver.InferFromText(t.Description)
	} else if uc.resolver.ResolveExplicit(t.Due) == "" {
		if due := uc.resolver.ResolveRelative(t.Due); due != "" {
			t.Due = due
		} else {
			t.Due = uc.resolver.InferFromText(t.Due)
		}
	}
	return t
}
