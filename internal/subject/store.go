package subject

import (
	"errors"
	"strings"
	"time"

	"github.com/dayoung/studypal/internal/summarize"
)

// ErrEmptyName rejects subject creation with a blank or whitespace-only name.
var ErrEmptyName = errors.New("subject name must not be empty")

// Store is the in-memory subject collection. All mutations happen
// synchronously on the UI event loop, so no locking is needed; nothing is
// persisted across restarts.
type Store struct {
	subjects []Subject
	identity Identity
}

// NewStore creates an empty Store drawing IDs and colors from identity.
func NewStore(identity Identity) *Store {
	return &Store{identity: identity}
}

// Create appends a new subject: fresh ID, zero progress, random color, no
// D-day, three empty todo lists, and the optional summary from a successful
// PDF upload. Returns ErrEmptyName for blank names with no state change.
func (s *Store) Create(name string, summary *summarize.HierarchicalSummary) (Subject, error) {
	if strings.TrimSpace(name) == "" {
		return Subject{}, ErrEmptyName
	}

	sub := Subject{
		ID:      s.identity.NewID(),
		Name:    name,
		Color:   s.identity.NewColor(),
		Summary: summary,
	}
	s.subjects = append(s.subjects, sub)
	return sub, nil
}

// List returns a snapshot of all subjects in insertion order.
func (s *Store) List() []Subject {
	out := make([]Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// Len returns the number of subjects.
func (s *Store) Len() int {
	return len(s.subjects)
}

// Get returns the subject with the given id.
func (s *Store) Get(id string) (Subject, bool) {
	for _, sub := range s.subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return Subject{}, false
}

// SetDDay replaces a subject's target date. A nil date clears it. Past
// dates are allowed; they represent overdue targets. Unknown ids are
// ignored (subjects are never deleted, so this cannot happen in practice).
func (s *Store) SetDDay(id string, date *time.Time) {
	if sub := s.find(id); sub != nil {
		sub.DDay = date
	}
}

// SetProgress updates a subject's progress percentage, clamped to 0-100.
func (s *Store) SetProgress(id string, pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if sub := s.find(id); sub != nil {
		sub.Progress = pct
	}
}

// AddTodo appends a todo to one subject's category list. Whitespace-only
// text is refused with no state change; ok reports whether a todo was added.
func (s *Store) AddTodo(id string, category Category, text string) (Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Todo{}, false
	}
	sub := s.find(id)
	if sub == nil {
		return Todo{}, false
	}

	todo := Todo{ID: s.identity.NewID(), Text: text}
	sub.Todos.setCategory(category, append(sub.Todos.ByCategory(category), todo))
	return todo, true
}

// ToggleTodo flips the completed flag of the matching todo in place. Stale
// ids are silently ignored so out-of-order UI events stay harmless.
func (s *Store) ToggleTodo(id string, category Category, todoID string) {
	sub := s.find(id)
	if sub == nil {
		return
	}
	list := sub.Todos.ByCategory(category)
	for i := range list {
		if list[i].ID == todoID {
			list[i].Completed = !list[i].Completed
			return
		}
	}
}

// DeleteTodo removes the matching todo, preserving the order of the rest.
// Stale ids are silently ignored.
func (s *Store) DeleteTodo(id string, category Category, todoID string) {
	sub := s.find(id)
	if sub == nil {
		return
	}
	list := sub.Todos.ByCategory(category)
	for i := range list {
		if list[i].ID == todoID {
			sub.Todos.setCategory(category, append(list[:i:i], list[i+1:]...))
			return
		}
	}
}

func (s *Store) find(id string) *Subject {
	for i := range s.subjects {
		if s.subjects[i].ID == id {
			return &s.subjects[i]
		}
	}
	return nil
}
