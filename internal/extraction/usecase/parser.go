package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/model"
	"voice-to-jira/pkg/dateparse"
	"voice-to-jira/pkg/labels"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	arraySpanRe = regexp.MustCompile(`\[[\s\S]*\]`)
)

// parseTasks extracts a JSON task array from raw generator output and coerces
// every element into the canonical schema. The generator is untrusted: field
// types are never taken at face value, lengths are bounded, and the priority
// is validated against the closed set. Non-object array elements are skipped.
func parseTasks(raw string, resolver *dateparse.Resolver) ([]model.Task, error) {
	blob := sanitizeResponse(raw)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &elements); err != nil {
		return nil, fmt.Errorf("%w: %s", extraction.ErrMalformedResponse, snippet(raw))
	}

	out := make([]model.Task, 0, len(elements))
	for _, el := range elements {
		var fields map[string]any
		if err := json.Unmarshal(el, &fields); err != nil {
			continue // tolerate stray scalars in the array
		}
		out = append(out, coerceTask(fields, resolver))
	}
	return out, nil
}

// sanitizeResponse strips markdown code fences and surrounding prose, keeping
// the first bracketed array span.
func sanitizeResponse(raw string) string {
	s := raw
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		s = m[1]
	}
	if span := arraySpanRe.FindString(s); span != "" {
		return span
	}
	return strings.TrimSpace(s)
}

// coerceTask maps one untrusted JSON object to a canonical task record.
func coerceTask(fields map[string]any, resolver *dateparse.Resolver) model.Task {
	summary := model.TruncateSummary(strings.TrimSpace(asString(fields["summary"])))

	labelSet := asLabels(fields["labels"])
	if len(labelSet) == 0 && summary != "" {
		labelSet = labels.Derive(summary)
	}

	due := ""
	if dueRaw := strings.TrimSpace(asString(fields["due"])); dueRaw != "" {
		if due = resolver.ResolveExplicit(dueRaw); due == "" {
			due = resolver.ResolveRelative(dueRaw)
		}
	}

	return model.Task{
		ID:          model.NewTaskID(),
		Summary:     summary,
		Description: strings.TrimSpace(asString(fields["description"])),
		Labels:      labelSet,
		Due:         due,
		Comment:     strings.TrimSpace(asString(fields["comment"])),
		Priority:    model.NormalizePriority(asString(fields["priority"])),
	}
}

// asString coerces an untrusted JSON value to a string. Numbers and booleans
// are rendered, everything else becomes empty.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}

// asLabels accepts both the requested comma-joined string and a JSON array.
func asLabels(v any) []string {
	switch t := v.(type) {
	case string:
		return model.SplitLabels(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			if s := strings.TrimSpace(asString(el)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// snippet bounds raw generator output for error messages.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > 200 {
		return string(r[:200]) + "..."
	}
	return s
}
