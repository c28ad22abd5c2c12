package components

import (
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/ui/theme"
)

// Checklist renders a todo list with a movable cursor.
type Checklist struct {
	Todos   []subject.Todo
	Cursor  int
	Focused bool
}

// View renders the checklist rows, or a placeholder for an empty list.
func (c Checklist) View() string {
	if len(c.Todos) == 0 {
		return theme.Hint.Render("  Nothing to do yet") + "\n"
	}

	var s string
	for i, todo := range c.Todos {
		box := "☐"
		if todo.Completed {
			box = "☑"
		}

		prefix := "  "
		if c.Focused && i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + box + " " + todo.Text
		switch {
		case todo.Completed:
			s += theme.Done.Render(line) + "\n"
		case c.Focused && i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// ClampCursor keeps the cursor inside the list after a mutation.
func (c *Checklist) ClampCursor() {
	if c.Cursor >= len(c.Todos) {
		c.Cursor = len(c.Todos) - 1
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}
}
