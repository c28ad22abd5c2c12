package subject

import "time"

// Seed loads the demo subjects shown on first launch.
func Seed(s *Store, now time.Time) {
	in30 := now.AddDate(0, 0, 30)
	in15 := now.AddDate(0, 0, 15)

	korean := Subject{
		ID:       s.identity.NewID(),
		Name:     "Korean History",
		Progress: 65,
		Color:    "#3b82f6",
		DDay:     &in30,
		Todos: TodoLists{
			Quiz:       []Todo{{ID: s.identity.NewID(), Text: "Solve quizzes for chapters 1-3"}},
			Notes:      []Todo{{ID: s.identity.NewID(), Text: "Organize the Joseon era", Completed: true}},
			Vocabulary: []Todo{{ID: s.identity.NewID(), Text: "Memorize 20 key terms"}},
		},
	}

	english := Subject{
		ID:       s.identity.NewID(),
		Name:     "English Grammar",
		Progress: 42,
		Color:    "#10b981",
	}

	math := Subject{
		ID:       s.identity.NewID(),
		Name:     "Math",
		Progress: 78,
		Color:    "#f59e0b",
		DDay:     &in15,
	}

	s.subjects = append(s.subjects, korean, english, math)
}
