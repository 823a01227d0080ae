package usecase

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"voice-to-jira/internal/model"
)

func TestNormalizeTasks_FillsMissingDue(t *testing.T) {
	r := testResolver(t)

	tasks := []model.Task{{ID: "a1", Summary: "Согласовать бюджет", Priority: model.PriorityMedium}}
	got := normalizeTasks(r, tasks, "нужно согласовать бюджет к пятнице")
	// Friday after Tuesday 2025-06-10.
	if got[0].Due != "2025-06-13" {
		t.Errorf("due = %q, want 2025-06-13", got[0].Due)
	}
}

func TestNormalizeTasks_DefaultOffset(t *testing.T) {
	r := testResolver(t)

	tasks := []model.Task{{ID: "a1", Summary: "Проверить логи", Priority: model.PriorityMedium}}
	got := normalizeTasks(r, tasks, "просто проверить логи")
	if got[0].Due != "2025-06-13" {
		t.Errorf("due = %q, want reference+3 = 2025-06-13", got[0].Due)
	}
}

func TestNormalizeTasks_KeepsValidDue(t *testing.T) {
	r := testResolver(t)

	tasks := []model.Task{{ID: "a1", Summary: "Релиз", Due: "2025-09-01", Labels: []string{"release"}, Priority: model.PriorityHigh}}
	got := normalizeTasks(r, tasks, "завтра что-то ещё")
	if got[0].Due != "2025-09-01" {
		t.Errorf("explicit due must win, got %q", got[0].Due)
	}
	if len(got[0].Labels) != 1 || got[0].Labels[0] != "release" {
		t.Errorf("labels must survive: %v", got[0].Labels)
	}
}

func TestNormalizeTasks_RelativeDueField(t *testing.T) {
	r := testResolver(t)

	tasks := []model.Task{{ID: "a1", Summary: "Созвон", Due: "завтра", Priority: model.PriorityMedium}}
	got := normalizeTasks(r, tasks, "")
	if got[0].Due != "2025-06-11" {
		t.Errorf("due = %q, want 2025-06-11", got[0].Due)
	}
}

func TestNormalizeTasks_Idempotent(t *testing.T) {
	r := testResolver(t)

	rapid.Check(t, func(t *rapid.T) {
		task := model.Task{
			ID:          rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, "id"),
			Summary:     rapid.StringN(0, 200, 400).Draw(t, "summary"),
			Description: rapid.StringN(0, 100, 200).Draw(t, "description"),
			Due:         rapid.SampledFrom([]string{"", "завтра", "2025-12-31", "nonsense", "через 2 дня"}).Draw(t, "due"),
			Priority:    rapid.SampledFrom([]string{"", "high", "urgent", "Lowest"}).Draw(t, "priority"),
		}
		source := rapid.StringN(0, 80, 160).Draw(t, "source")

		once := normalizeTasks(r, []model.Task{task}, source)
		twice := normalizeTasks(r, once, source)

		if len(once) != 1 || len(twice) != 1 {
			t.Fatalf("length changed: %d / %d", len(once), len(twice))
		}
		a, b := once[0], twice[0]
		if a.Due != b.Due || a.Summary != b.Summary || a.Priority != b.Priority {
			t.Fatalf("not idempotent: %+v vs %+v", a, b)
		}
		if len(a.Labels) != len(b.Labels) {
			t.Fatalf("labels changed between runs: %v vs %v", a.Labels, b.Labels)
		}
		if r.ResolveExplicit(a.Due) == "" {
			t.Fatalf("normalized due %q is not a valid ISO date", a.Due)
		}
		if !validPriority(a.Priority) {
			t.Fatalf("normalized priority %q outside the closed set", a.Priority)
		}
	})
}

func validPriority(p string) bool {
	for _, v := range model.Priorities {
		if v == p {
			return true
		}
	}
	return false
}

func TestNormalizeTasks_SummaryCap(t *testing.T) {
	r := testResolver(t)

	long := strings.Repeat("ы", 300)
	got := normalizeTasks(r, []model.Task{{ID: "a1", Summary: long, Priority: model.PriorityMedium}}, "")
	if n := len([]rune(got[0].Summary)); n != model.MaxSummaryLen {
		t.Errorf("summary length = %d runes, want %d", n, model.MaxSummaryLen)
	}
}
