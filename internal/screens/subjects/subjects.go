// Package subjects implements the main screen: the list of study subjects.
package subjects

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/dday"
	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

// ListScreen shows the subject cards with progress and D-day badges.
type ListScreen struct {
	store  *subject.Store
	cursor int
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the subject list screen.
func New(store *subject.Store) *ListScreen {
	return &ListScreen{store: store}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Title() string {
	return "My Studies"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open subject"},
		{Key: "1-4", Description: "Switch tab"},
	}
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	count := l.store.Len()
	switch kmsg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < count-1 {
			l.cursor++
		}
	case "enter":
		subs := l.store.List()
		if l.cursor < len(subs) {
			id := subs[l.cursor].ID
			return l, func() tea.Msg { return nav.SelectSubjectMsg{ID: id} }
		}
	}

	return l, nil
}

func (l *ListScreen) View(width, height int) string {
	subs := l.store.List()

	if len(subs) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			theme.Subtitle.Render("No subjects yet"),
			"",
			theme.Hint.Render("Open the + tab to add one"),
		)
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(empty)
	}

	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}
	if cardWidth < 30 {
		cardWidth = 30
	}

	var cards []string
	for i, sub := range subs {
		cards = append(cards, renderCard(sub, i == l.cursor, cardWidth))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, cards...)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(list)
}

func renderCard(sub subject.Subject, selected bool, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sub.Name)

	badge := ""
	if days, ok := dday.DaysRemaining(sub.DDay, time.Now()); ok {
		badge = "  " + theme.Badge.Render(dday.Label(days))
	}

	pct := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d%%", sub.Progress))

	top := name + badge
	gap := width - lipgloss.Width(top) - lipgloss.Width(pct) - 4
	if gap < 1 {
		gap = 1
	}
	header := top + lipgloss.NewStyle().Render(fmt.Sprintf("%*s", gap, "")) + pct

	bar := components.NewProgressBar("", float64(sub.Progress)/100, false, width-4)

	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(theme.Primary)
	}
	return style.Render(header + "\n" + bar.View())
}
