package usecase

import (
	"testing"

	"voice-to-jira/internal/model"
)

func TestMaybeSplit_TwoActions(t *testing.T) {
	r := testResolver(t)
	in := model.Task{
		ID:          "orig1234",
		Summary:     "Подготовить отчёт и отправить письмо",
		Description: "Подготовить отчёт и отправить письмо",
		Due:         "2025-09-01",
		Comment:     "из голосовой заметки",
		Priority:    model.PriorityHigh,
	}

	got := maybeSplit(in, r)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(got), got)
	}
	if got[0].Summary != "Подготовить отчёт" {
		t.Errorf("first summary = %q", got[0].Summary)
	}
	if got[1].Summary != "Отправить письмо" {
		t.Errorf("second summary = %q", got[1].Summary)
	}
	for i, task := range got {
		// Neither piece mentions a date, so each gets the default inferred
		// offset instead of the merged task's date.
		if task.Due != "2025-06-13" {
			t.Errorf("task %d due = %q, want 2025-06-13", i, task.Due)
		}
		if task.Comment != in.Comment {
			t.Errorf("task %d comment = %q", i, task.Comment)
		}
		if task.Priority != in.Priority {
			t.Errorf("task %d priority = %q", i, task.Priority)
		}
		if task.ID == in.ID || task.ID == "" {
			t.Errorf("task %d must get a fresh id, got %q", i, task.ID)
		}
		if len(task.Labels) == 0 {
			t.Errorf("task %d has no derived labels", i)
		}
	}
	if got[0].ID == got[1].ID {
		t.Error("split tasks share an id")
	}
}

func TestMaybeSplit_PieceDueFromPieceText(t *testing.T) {
	r := testResolver(t)
	in := model.Task{
		ID:          "orig1234",
		Summary:     "Подготовить отчёт и отправить письмо",
		Description: "Подготовить отчёт сегодня и отправить письмо завтра",
		Due:         "2025-09-01",
		Priority:    model.PriorityMedium,
	}

	got := maybeSplit(in, r)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(got), got)
	}
	if got[0].Due != "2025-06-10" {
		t.Errorf("first due = %q, want 2025-06-10 (сегодня)", got[0].Due)
	}
	if got[1].Due != "2025-06-11" {
		t.Errorf("second due = %q, want 2025-06-11 (завтра)", got[1].Due)
	}
}

func TestMaybeSplit_EnglishConnectors(t *testing.T) {
	r := testResolver(t)
	in := model.Task{
		ID:          "abc",
		Summary:     "Review the pull request and then update the changelog",
		Description: "Review the pull request and then update the changelog",
		Priority:    model.PriorityMedium,
	}
	got := maybeSplit(in, r)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(got), got)
	}
}

func TestMaybeSplit_NoConnector(t *testing.T) {
	r := testResolver(t)
	in := model.Task{ID: "abc", Summary: "Исправить баг", Description: "Исправить баг в авторизации", Priority: model.PriorityMedium}
	got := maybeSplit(in, r)
	if len(got) != 1 || got[0].ID != "abc" {
		t.Fatalf("task without connectors must pass through unchanged: %+v", got)
	}
}

func TestMaybeSplit_TinyPieces(t *testing.T) {
	// Both fragments are too short to be actions; the original survives.
	r := testResolver(t)
	in := model.Task{ID: "abc", Summary: "aб и вг", Description: "", Priority: model.PriorityMedium}
	got := maybeSplit(in, r)
	if len(got) != 1 || got[0].ID != "abc" {
		t.Fatalf("expected original task back, got %+v", got)
	}
}

func TestMaybeSplit_EmptyDescriptionUsesSummary(t *testing.T) {
	r := testResolver(t)
	in := model.Task{
		ID:       "abc",
		Summary:  "Купить молоко затем забрать посылку",
		Priority: model.PriorityLow,
	}
	got := maybeSplit(in, r)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks from summary, got %d", len(got))
	}
}

func TestMaybeSplit_UnsplittableDescriptionUnchanged(t *testing.T) {
	// The summary carries a connector but the description is the split base;
	// when it yields a single piece the task comes back untouched.
	r := testResolver(t)
	in := model.Task{
		ID:          "abc",
		Summary:     "Купить молоко и забрать посылку",
		Description: "Одна поездка в магазин",
		Due:         "2025-06-20",
		Priority:    model.PriorityMedium,
	}
	got := maybeSplit(in, r)
	if len(got) != 1 {
		t.Fatalf("expected the original task back, got %d: %+v", len(got), got)
	}
	if got[0].ID != "abc" || got[0].Due != "2025-06-20" {
		t.Fatalf("task must pass through unchanged: %+v", got[0])
	}
}
