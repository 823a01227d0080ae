package usecase

import (
	"errors"
	"testing"
	"time"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/model"
	"voice-to-jira/pkg/dateparse"
)

func testResolver(t *testing.T) *dateparse.Resolver {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Almaty")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Tuesday
	fixed := time.Date(2025, 6, 10, 15, 30, 0, 0, loc)
	r, err := dateparse.NewResolver("Asia/Almaty", func() time.Time { return fixed })
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	return r
}

func TestParseTasks_ProseWrappedArray(t *testing.T) {
	r := testResolver(t)

	raw := "Here you go: [{\"summary\": \"Buy milk\", \"due\": \"tomorrow\", \"priority\": \"high\"}] hope that helps!"
	tasks, err := parseTasks(raw, r)
	if err != nil {
		t.Fatalf("parseTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Summary != "Buy milk" {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Due != "2025-06-11" {
		t.Errorf("due = %q, want 2025-06-11", got.Due)
	}
	if got.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want High", got.Priority)
	}
	if got.ID == "" {
		t.Error("expected a generated task id")
	}
	if len(got.Labels) == 0 {
		t.Error("expected labels derived from summary")
	}
}

func TestParseTasks_CodeFence(t *testing.T) {
	r := testResolver(t)

	raw := "```json\n[{\"summary\": \"Deploy service\", \"due\": \"2025-07-01\"}]\n```"
	tasks, err := parseTasks(raw, r)
	if err != nil {
		t.Fatalf("parseTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Due != "2025-07-01" {
		t.Fatalf("unexpected result: %+v", tasks)
	}
}

func TestParseTasks_SkipsNonObjects(t *testing.T) {
	r := testResolver(t)

	raw := `[{"summary": "real task"}, "stray string", 42, {"summary": "another"}]`
	tasks, err := parseTasks(raw, r)
	if err != nil {
		t.Fatalf("parseTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}

func TestParseTasks_NoArray(t *testing.T) {
	r := testResolver(t)

	for _, raw := range []string{
		"I could not find any tasks in the text.",
		`{"summary": "a bare object"}`,
		"",
	} {
		if _, err := parseTasks(raw, r); !errors.Is(err, extraction.ErrMalformedResponse) {
			t.Errorf("parseTasks(%q) err = %v, want ErrMalformedResponse", raw, err)
		}
	}
}

func TestParseTasks_FieldCoercion(t *testing.T) {
	r := testResolver(t)

	raw := `[{"summary": 42, "labels": ["api", "backend"], "due": "в пятницу", "priority": "urgent", "comment": true}]`
	tasks, err := parseTasks(raw, r)
	if err != nil {
		t.Fatalf("parseTasks: %v", err)
	}
	got := tasks[0]
	if got.Summary != "42" {
		t.Errorf("summary = %q, want \"42\"", got.Summary)
	}
	if len(got.Labels) != 2 || got.Labels[0] != "api" {
		t.Errorf("labels = %v", got.Labels)
	}
	// Friday after Tuesday 2025-06-10.
	if got.Due != "2025-06-13" {
		t.Errorf("due = %q, want 2025-06-13", got.Due)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, unknown names must fold to Medium", got.Priority)
	}
	if got.Comment != "true" {
		t.Errorf("comment = %q", got.Comment)
	}
}

func TestParseTasks_CommaJoinedLabels(t *testing.T) {
	r := testResolver(t)

	raw := `[{"summary": "Write report", "labels": "report, quarterly , finance"}]`
	tasks, err := parseTasks(raw, r)
	if err != nil {
		t.Fatalf("parseTasks: %v", err)
	}
	want := []string{"report", "quarterly", "finance"}
	got := tasks[0].Labels
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
