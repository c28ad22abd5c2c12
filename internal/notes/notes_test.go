package notes

import (
	"testing"

	"github.com/dayoung/studypal/internal/summarize"
)

func TestFromSummary(t *testing.T) {
	s := &summarize.HierarchicalSummary{
		DocumentID:       "doc-1",
		NoteStyleSummary: "The whole document in one block.",
		Pages: []summarize.PageSummary{
			{Page: 1, Summary: "First page."},
			{Page: 3, Summary: "Third page."},
		},
	}

	got := FromSummary(s)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (overview + 2 pages)", len(got))
	}
	if got[0].Title != "Overview" || got[0].Content != s.NoteStyleSummary {
		t.Errorf("overview section wrong: %+v", got[0])
	}
	if got[1].Title != "Page 1" || got[2].Title != "Page 3" {
		t.Errorf("page sections out of order: %q, %q", got[1].Title, got[2].Title)
	}
}

func TestFromSummary_Nil(t *testing.T) {
	if got := FromSummary(nil); got != nil {
		t.Errorf("FromSummary(nil) = %v, want nil", got)
	}
}

func TestMockNotes(t *testing.T) {
	for i, n := range MockNotes() {
		if n.Title == "" || n.Content == "" || len(n.KeyPoints) == 0 {
			t.Errorf("note %d is incomplete", i)
		}
	}
}
