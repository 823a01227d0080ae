package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"voice-to-jira/internal/model"
	"voice-to-jira/pkg/dateparse"
	"voice-to-jira/pkg/labels"
)

// connectorRe matches sequencing connectors used to chain several actions in
// one sentence. Longer alternatives come first so "а также" is not consumed
// as a bare "а".
var connectorRe = regexp.MustCompile(`(?i)\s+(?:а также|после этого|затем|потом|и|after that|also|and|then|next)\s+`)

const splitTrimCutset = " .,!?:;"

// maybeSplit applies a heuristic fallback when the generator collapsed a
// multi-action transcript into a single task. The combined summary and
// description are scanned for connectors; each resulting piece becomes its
// own task with a due date resolved from the piece text alone, inheriting
// only the original comment and priority.
func maybeSplit(t model.Task, resolver *dateparse.Resolver) []model.Task {
	combined := strings.TrimSpace(t.Summary + " . " + t.Description)
	if !connectorRe.MatchString(strings.ToLower(combined)) {
		return []model.Task{t}
	}

	base := t.Description
	if strings.TrimSpace(base) == "" {
		base = t.Summary
	}

	// No partial splits: the base either yields several actions or the task
	// stays as-is.
	pieces := splitPieces(base)
	if len(pieces) < 2 {
		return []model.Task{t}
	}

	out := make([]model.Task, 0, len(pieces))
	for _, piece := range pieces {
		out = append(out, model.Task{
			ID:          model.NewTaskID(),
			Summary:     model.TruncateSummary(capitalize(piece)),
			Description: piece,
			Labels:      labels.Derive(piece),
			Due:         dueForPiece(piece, resolver),
			Comment:     t.Comment,
			Priority:    t.Priority,
		})
	}
	return out
}

// dueForPiece resolves each piece's due date from its own text.
func dueForPiece(piece string, resolver *dateparse.Resolver) string {
	if due := resolver.ResolveRelative(piece); due != "" {
		return due
	}
	return resolver.InferFromText(piece)
}

// splitPieces cuts text on connectors and discards fragments too short to be
// an action.
func splitPieces(text string) []string {
	parts := connectorRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, splitTrimCutset)
		if len([]rune(p)) > 2 {
			out = append(out, p)
		}
	}
	return out
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
