package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/ui/theme"
)

var tabOrder = []nav.Tab{nav.TabMain, nav.TabAdd, nav.TabCalendar, nav.TabSettings}

var tabIcons = map[nav.Tab]string{
	nav.TabMain:     "⌂",
	nav.TabAdd:      "+",
	nav.TabCalendar: "▦",
	nav.TabSettings: "⚙",
}

// TabBar renders the bottom navigation bar.
type TabBar struct {
	Active nav.Tab
}

// View renders the tab bar across the given width.
func (t TabBar) View(width int) string {
	parts := make([]string, 0, len(tabOrder))
	for _, tab := range tabOrder {
		label := tabIcons[tab] + " " + tab.String()
		if tab == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}

	content := strings.Join(parts, "  ")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(theme.BgCard).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(theme.Border).
		Render(content)
}
