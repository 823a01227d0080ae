package labels_test

import (
	"reflect"
	"testing"

	"voice-to-jira/pkg/labels"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "Empty title",
			title: "",
			want:  nil,
		},
		{
			name:  "Short words dropped",
			title: "go to HQ",
			want:  nil,
		},
		{
			name:  "Basic english",
			title: "Prepare quarterly sales report",
			want:  []string{"prepare", "quarterly", "sales", "report"},
		},
		{
			name:  "Cyrillic words",
			title: "Подготовить отчёт по продажам",
			want:  []string{"подготовить", "отчёт", "продажам"},
		},
		{
			name:  "Case-insensitive dedup keeps first occurrence",
			title: "Report REPORT report budget",
			want:  []string{"report", "budget"},
		},
		{
			name:  "Capped at five",
			title: "one-a two-b three-c four-d five-e six-f seven-g",
			want:  []string{"one-a", "two-b", "three-c", "four-d", "five-e"},
		},
		{
			name:  "Hyphen and digits kept",
			title: "Deploy v2-beta build 2025",
			want:  []string{"deploy", "v2-beta", "build", "2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labels.Derive(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Derive(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestDeriveDeterministic(t *testing.T) {
	title := "Отправить письмо клиенту и письмо партнёру"
	first := labels.Derive(title)
	for i := 0; i < 10; i++ {
		if got := labels.Derive(title); !reflect.DeepEqual(got, first) {
			t.Fatalf("Derive not deterministic: %v vs %v", got, first)
		}
	}
}
