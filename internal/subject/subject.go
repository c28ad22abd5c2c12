// Package subject owns the in-memory collection of study subjects: creation,
// progress, D-day targets, and the per-category todo lists.
package subject

import (
	"time"

	"github.com/dayoung/studypal/internal/summarize"
)

// Category names one of the three fixed todo lists every subject carries.
type Category string

const (
	CategoryQuiz       Category = "quiz"
	CategoryNotes      Category = "notes"
	CategoryVocabulary Category = "vocabulary"
)

// Categories lists the fixed categories in display order.
func Categories() []Category {
	return []Category{CategoryQuiz, CategoryNotes, CategoryVocabulary}
}

// Todo is a single checkable task scoped to one subject and one category.
type Todo struct {
	ID        string
	Text      string
	Completed bool
}

// TodoLists holds the three category lists, insertion order preserved.
type TodoLists struct {
	Quiz       []Todo
	Notes      []Todo
	Vocabulary []Todo
}

// ByCategory returns the list for a category. Unknown categories yield nil.
func (t *TodoLists) ByCategory(c Category) []Todo {
	switch c {
	case CategoryQuiz:
		return t.Quiz
	case CategoryNotes:
		return t.Notes
	case CategoryVocabulary:
		return t.Vocabulary
	}
	return nil
}

func (t *TodoLists) setCategory(c Category, todos []Todo) {
	switch c {
	case CategoryQuiz:
		t.Quiz = todos
	case CategoryNotes:
		t.Notes = todos
	case CategoryVocabulary:
		t.Vocabulary = todos
	}
}

// Subject is one tracked study topic.
type Subject struct {
	ID       string
	Name     string
	Progress int // 0-100
	Color    string
	DDay     *time.Time
	Todos    TodoLists

	// Summary is attached only when the subject was created from a PDF
	// upload that succeeded.
	Summary *summarize.HierarchicalSummary
}
