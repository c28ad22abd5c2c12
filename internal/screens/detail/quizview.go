package detail

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/quiz"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

func (s *Screen) updateQuiz(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	r := s.runner

	if r.Finished() {
		switch kmsg.String() {
		case "r":
			r.Restart()
		case "enter", "esc":
			s.leaveActivity()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		s.leaveActivity()

	case "up", "k":
		if cur := r.Selected(); cur > 0 {
			r.Select(cur - 1)
		} else if cur == quiz.NoSelection {
			r.Select(0)
		}
	case "down", "j":
		if cur := r.Selected(); cur == quiz.NoSelection {
			r.Select(0)
		} else {
			r.Select(cur + 1)
		}

	case "enter", " ", "space":
		if r.Revealed() {
			r.Advance()
		} else {
			r.Submit()
		}
	}

	return s, nil
}

// leaveActivity drops back to the entry card, discarding activity state.
func (s *Screen) leaveActivity() {
	s.runner = nil
	s.deck = nil
	s.scroll = 0
	s.setView(nav.View{Category: s.view.Category, Mode: nav.ModeStart})
}

func (s *Screen) quizKeyHints() []layout.KeyHint {
	if s.runner.Finished() {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Enter", Description: "Done"},
		}
	}
	if s.runner.Revealed() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pick"},
		{Key: "Enter", Description: "Check answer"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (s *Screen) viewQuiz(width int) string {
	r := s.runner
	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	if r.Finished() {
		verdict := "Keep at it!"
		if r.Total() > 0 && r.Score() == r.Total() {
			verdict = "Perfect score!"
		}
		card := theme.Card.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				theme.Title.Render("Quiz complete"),
				"",
				theme.Body.Render(fmt.Sprintf("Score: %d / %d", r.Score(), r.Total())),
				"",
				theme.Subtitle.Render(verdict),
			))
		return center(card, width)
	}

	q := r.Current()
	progress := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", r.Index()+1, r.Total()))

	cursor := r.Selected()
	if cursor == quiz.NoSelection {
		cursor = 0
	}
	options := components.OptionList{
		Options:  q.Options,
		Correct:  q.Correct,
		Cursor:   cursor,
		Chosen:   r.Selected(),
		Revealed: r.Revealed(),
	}

	rows := []string{
		progress,
		"",
		theme.Body.Bold(true).Render(q.Prompt),
		"",
		options.View(),
	}
	if r.Revealed() {
		if r.Selected() == q.Correct {
			rows = append(rows, theme.Correct.Render("Correct!"))
		} else {
			rows = append(rows, theme.Incorrect.Render("Not quite."))
		}
	}

	card := theme.Card.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
	return center(card, width)
}

func center(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(content)
}
