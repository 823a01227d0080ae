package model

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxSummaryLen is the hard cap on a task summary, in runes.
const MaxSummaryLen = 160

// MaxDerivedLabels caps auto-derived label sets.
const MaxDerivedLabels = 5

// Priority values accepted by the tracker, in rank order.
const (
	PriorityHighest = "Highest"
	PriorityHigh    = "High"
	PriorityMedium  = "Medium"
	PriorityLow     = "Low"
	PriorityLowest  = "Lowest"
)

// Priorities is the closed set of valid priority names.
var Priorities = []string{PriorityHighest, PriorityHigh, PriorityMedium, PriorityLow, PriorityLowest}

// Task is the canonical task record flowing through extraction, the session
// editor, and Jira submission.
type Task struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	Due         string   `json:"due"` // "" or YYYY-MM-DD
	Comment     string   `json:"comment"`
	Priority    string   `json:"priority"`
}

// NewTaskID returns a fresh short task identifier (8 hex chars).
func NewTaskID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:8]
}

// NewTask returns an empty task skeleton with a fresh ID and default priority.
func NewTask() Task {
	return Task{ID: NewTaskID(), Labels: []string{}, Priority: PriorityMedium}
}

// TruncateSummary enforces the summary length cap, counting runes so that
// Cyrillic input is not cut mid-character.
func TruncateSummary(s string) string {
	r := []rune(s)
	if len(r) > MaxSummaryLen {
		return string(r[:MaxSummaryLen])
	}
	return s
}

// NormalizePriority folds a free-form priority string to title case and
// validates it against the closed set. Anything unrecognized becomes Medium.
func NormalizePriority(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityMedium
	}
	folded := titleCase(s)
	for _, p := range Priorities {
		if p == folded {
			return p
		}
	}
	return PriorityMedium
}

func titleCase(s string) string {
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// JoinLabels renders a label set in its comma-joined wire form.
func JoinLabels(labels []string) string {
	return strings.Join(labels, ", ")
}

// SplitLabels parses a comma-joined label string, dropping empty entries.
func SplitLabels(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
