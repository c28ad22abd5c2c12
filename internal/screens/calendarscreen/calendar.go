// Package calendarscreen implements the study calendar: a month grid with a
// focused day, the day's plan list, and AI plan suggestions.
package calendarscreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/assistant"
	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/planner"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

// suggestionMsg carries the suggester's plan title back onto the event loop.
type suggestionMsg struct {
	Title string
	Date  time.Time
	Err   error
}

// CalendarScreen shows one month at a time with a movable day focus.
type CalendarScreen struct {
	plans     *planner.Store
	subjects  *subject.Store
	suggester assistant.Suggester

	focus      time.Time
	adding     bool
	input      components.TextInput
	suggesting bool
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)

// New creates the calendar screen focused on today.
func New(plans *planner.Store, subjects *subject.Store, suggester assistant.Suggester, now time.Time) *CalendarScreen {
	return &CalendarScreen{
		plans:     plans,
		subjects:  subjects,
		suggester: suggester,
		focus:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		input:     components.NewTextInput("e.g. Solve 10 practice problems", false, 80),
	}
}

func (c *CalendarScreen) Init() tea.Cmd {
	return nil
}

func (c *CalendarScreen) Title() string {
	return "Study Calendar"
}

func (c *CalendarScreen) KeyHints() []layout.KeyHint {
	if c.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add plan"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Day"},
		{Key: "a", Description: "Add plan"},
		{Key: "s", Description: "AI suggestion"},
	}
}

func (c *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionMsg:
		return c.handleSuggestion(msg)

	case tea.KeyMsg:
		if c.adding {
			return c.updateEntry(msg)
		}
		return c.updateGrid(msg)
	}

	if c.adding {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CalendarScreen) updateGrid(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "left", "h":
		c.focus = c.focus.AddDate(0, 0, -1)
	case "right", "l":
		c.focus = c.focus.AddDate(0, 0, 1)
	case "up", "k":
		c.focus = c.focus.AddDate(0, 0, -7)
	case "down", "j":
		c.focus = c.focus.AddDate(0, 0, 7)

	case "a":
		c.adding = true
		c.input.Reset()
		return c, c.input.Focus()

	case "s":
		return c, c.suggestCmd()
	}

	return c, nil
}

func (c *CalendarScreen) updateEntry(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		c.adding = false
		return c, nil
	case "enter":
		title := c.input.Value()
		c.adding = false
		if _, ok := c.plans.Add(title, c.focus); ok {
			return c, func() tea.Msg { return nav.ToastMsg{Text: "Plan added!"} }
		}
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(kmsg)
	return c, cmd
}

// suggestCmd asks the suggester for a plan title off the event loop.
func (c *CalendarScreen) suggestCmd() tea.Cmd {
	if c.suggester == nil || c.suggesting {
		return nil
	}
	c.suggesting = true

	var names []string
	for _, s := range c.subjects.List() {
		names = append(names, s.Name)
	}
	suggester := c.suggester
	date := c.focus
	return func() tea.Msg {
		title, err := suggester.Suggest(context.Background(), names, date)
		return suggestionMsg{Title: title, Date: date, Err: err}
	}
}

func (c *CalendarScreen) handleSuggestion(msg suggestionMsg) (screen.Screen, tea.Cmd) {
	c.suggesting = false

	if msg.Err != nil {
		return c, func() tea.Msg {
			return nav.ToastMsg{Text: "Suggestion failed: " + msg.Err.Error(), IsErr: true}
		}
	}

	c.plans.AddSuggested(msg.Title, msg.Date)
	return c, func() tea.Msg { return nav.ToastMsg{Text: "AI plan added!"} }
}

func (c *CalendarScreen) View(width, height int) string {
	grid := c.renderMonth()
	dayList := c.renderDay(width)

	sections := []string{grid, "", dayList}
	if c.adding {
		sections = append(sections, "", theme.Body.Render("New plan: ")+c.input.View())
	} else if c.suggesting {
		sections = append(sections, "", theme.Hint.Render("Asking the AI for a plan..."))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// renderMonth draws the focused month as a Sunday-first grid. Days with
// plans carry a dot marker.
func (c *CalendarScreen) renderMonth() string {
	first := time.Date(c.focus.Year(), c.focus.Month(), 1, 0, 0, 0, 0, c.focus.Location())
	title := theme.Title.Render(first.Format("January 2006"))

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	// pad up to the first weekday
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%2d", day)

		switch {
		case date.Equal(c.focus):
			cell = theme.Selected.Render(cell)
		case len(c.plans.On(date)) > 0:
			cell = lipgloss.NewStyle().Foreground(theme.Accent).Render(cell)
		default:
			cell = lipgloss.NewStyle().Foreground(theme.Text).Render(cell)
		}

		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, title, "", b.String())
}

func (c *CalendarScreen) renderDay(width int) string {
	cardWidth := width - 8
	if cardWidth > 60 {
		cardWidth = 60
	}

	heading := theme.Body.Bold(true).Render(c.focus.Format("Mon, Jan 2"))

	plans := c.plans.On(c.focus)
	var rows []string
	if len(plans) == 0 {
		rows = append(rows, theme.Hint.Render("No plans for this day"))
	}
	for _, p := range plans {
		marker := "•"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.AI {
			marker = "✦"
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		rows = append(rows, style.Render(marker+" "+p.Title))
	}

	return theme.Card.Width(cardWidth).Render(
		heading + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, rows...))
}
