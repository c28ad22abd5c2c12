package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/ui/theme"
)

// OptionList renders a quiz question's options. Before reveal the cursor row
// is highlighted; after reveal the correct option turns green and a wrong
// pick turns red.
type OptionList struct {
	Options  []string
	Correct  int
	Cursor   int
	Chosen   int // -1 when nothing picked
	Revealed bool
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Revealed && i == o.Correct:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case o.Revealed && i == o.Chosen:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Chosen:
			s += theme.Selected.Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
