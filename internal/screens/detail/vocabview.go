package detail

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

func (s *Screen) updateVocab(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.leaveActivity()
	case " ", "space", "enter":
		s.deck.Flip()
	case "right", "l", "n":
		s.deck.Next()
	case "left", "h", "p":
		s.deck.Prev()
	case "r":
		s.deck.Restart()
	}
	return s, nil
}

func (s *Screen) vocabKeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Card"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) viewVocab(width int) string {
	d := s.deck
	cardWidth := width - 8
	if cardWidth > 56 {
		cardWidth = 56
	}

	card := d.Current()
	if card == nil {
		return center(theme.Subtitle.Render("No cards in this deck"), width)
	}

	position := theme.Subtitle.Render(fmt.Sprintf("Card %d of %d", d.Index()+1, d.Total()))

	var face string
	if d.Flipped() {
		rows := []string{theme.Body.Render(card.Definition)}
		if card.Example != "" {
			rows = append(rows, "", theme.Hint.Render(card.Example))
		}
		face = lipgloss.JoinVertical(lipgloss.Center, rows...)
	} else {
		face = theme.Title.Render(card.Term)
	}

	side := theme.Hint.Render("term")
	if d.Flipped() {
		side = theme.Hint.Render("definition")
	}

	flashcard := theme.Card.
		Width(cardWidth).
		Align(lipgloss.Center).
		Padding(2, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, side, "", face))

	return center(lipgloss.JoinVertical(lipgloss.Center,
		position, "", flashcard, "",
		theme.Hint.Render("Space to flip"),
	), width)
}
