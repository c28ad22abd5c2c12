// Package settings implements the profile and preferences screen.
package settings

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

const (
	rowName = iota
	rowEmail
	rowGoal
	rowNotifications
	rowDarkMode
	rowCount
)

// Profile holds the editable user settings. Held in memory only, like the
// rest of the app state.
type Profile struct {
	Name          string
	Email         string
	DailyGoalMins int
	Notifications bool
	DarkMode      bool
}

// DefaultProfile is the profile shown on first launch.
func DefaultProfile() Profile {
	return Profile{
		Name:          "Kim Da-yoon",
		Email:         "dayoon@studypal.app",
		DailyGoalMins: 120,
		Notifications: true,
		DarkMode:      true,
	}
}

// SettingsScreen edits the profile row by row.
type SettingsScreen struct {
	profile *Profile

	cursor  int
	editing bool
	input   components.TextInput
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen around a shared profile.
func New(profile *Profile) *SettingsScreen {
	return &SettingsScreen{profile: profile}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "Enter", Description: "Edit / toggle"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		return s.updateEdit(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rowCount-1 {
			s.cursor++
		}
	case "enter", " ", "space":
		return s.activateRow()
	}

	return s, nil
}

// activateRow toggles a switch row or opens the editor on a text row.
func (s *SettingsScreen) activateRow() (screen.Screen, tea.Cmd) {
	switch s.cursor {
	case rowNotifications:
		s.profile.Notifications = !s.profile.Notifications
		return s, nil
	case rowDarkMode:
		s.profile.DarkMode = !s.profile.DarkMode
		return s, nil
	}

	s.editing = true
	switch s.cursor {
	case rowName:
		s.input = components.NewTextInput("Your name", false, 40)
		s.input.SetValue(s.profile.Name)
	case rowEmail:
		s.input = components.NewTextInput("you@example.com", false, 80)
		s.input.SetValue(s.profile.Email)
	case rowGoal:
		s.input = components.NewTextInput("Minutes per day", true, 4)
		s.input.SetValue(fmt.Sprintf("%d", s.profile.DailyGoalMins))
	}
	return s, s.input.Focus()
}

func (s *SettingsScreen) updateEdit(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "enter":
		s.editing = false
		return s.commitEdit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *SettingsScreen) commitEdit() (screen.Screen, tea.Cmd) {
	switch s.cursor {
	case rowName:
		if v := s.input.Value(); v != "" {
			s.profile.Name = v
		}
	case rowEmail:
		if v := s.input.Value(); v != "" {
			s.profile.Email = v
		}
	case rowGoal:
		n, err := s.input.NumericValue()
		if err != nil || n <= 0 {
			return s, nil
		}
		s.profile.DailyGoalMins = n
	}
	return s, func() tea.Msg { return nav.ToastMsg{Text: "Settings saved"} }
}

func (s *SettingsScreen) View(width, height int) string {
	cardWidth := width - 8
	if cardWidth > 60 {
		cardWidth = 60
	}

	rows := []string{
		s.renderTextRow(rowName, "Name", s.profile.Name),
		s.renderTextRow(rowEmail, "Email", s.profile.Email),
		s.renderTextRow(rowGoal, "Daily goal", fmt.Sprintf("%d min", s.profile.DailyGoalMins)),
		s.renderToggleRow(rowNotifications, "Notifications", s.profile.Notifications),
		s.renderToggleRow(rowDarkMode, "Dark mode", s.profile.DarkMode),
	}

	card := theme.Card.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))

	sections := []string{card}
	if s.editing {
		sections = append(sections, "", theme.Body.Render("New value: ")+s.input.View())
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (s *SettingsScreen) renderTextRow(row int, label, value string) string {
	return s.renderRow(row, label, lipgloss.NewStyle().Foreground(theme.TextDim).Render(value))
}

func (s *SettingsScreen) renderToggleRow(row int, label string, on bool) string {
	state := theme.Hint.Render("off")
	if on {
		state = theme.Correct.Render("on")
	}
	return s.renderRow(row, label, state)
}

func (s *SettingsScreen) renderRow(row int, label, value string) string {
	prefix := "  "
	labelStyle := theme.Body
	if row == s.cursor && !s.editing {
		prefix = "▸ "
		labelStyle = theme.Selected
	}
	return fmt.Sprintf("%s%s  %s", prefix, labelStyle.Render(label), value)
}
