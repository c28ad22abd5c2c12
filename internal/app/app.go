// Package app wires the screens, stores, and navigation state into the root
// Bubble Tea model.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/assistant"
	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/planner"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/screens/addsubject"
	"github.com/dayoung/studypal/internal/screens/calendarscreen"
	"github.com/dayoung/studypal/internal/screens/detail"
	"github.com/dayoung/studypal/internal/screens/settings"
	"github.com/dayoung/studypal/internal/screens/subjects"
	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/summarize"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

const toastDuration = 3 * time.Second

// Options carries the externally built dependencies into the app.
type Options struct {
	Client    *summarize.Client
	Suggester assistant.Suggester
	// DownloadDir is where summary PDFs are saved. "" means the working
	// directory.
	DownloadDir string
}

// toastExpiredMsg clears a toast. Gen guards against an old timer clearing
// a newer toast.
type toastExpiredMsg struct {
	Gen int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	navState *nav.State
	store    *subject.Store
	plans    *planner.Store
	profile  *settings.Profile
	opts     Options

	tabs       map[nav.Tab]screen.Screen
	detailView screen.Screen

	toast    string
	toastErr bool
	toastGen int

	width  int
	height int
}

// newAppModel builds the stores, seeds the demo data, and creates the four
// persistent tab screens.
func newAppModel(opts Options) AppModel {
	identity := subject.RandomIdentity()
	store := subject.NewStore(identity)
	subject.Seed(store, time.Now())

	plans := planner.NewStore(identity)
	plans.Seed(time.Now())

	profile := settings.DefaultProfile()
	navState := nav.NewState()

	tabs := map[nav.Tab]screen.Screen{
		nav.TabMain:     subjects.New(store),
		nav.TabAdd:      addsubject.New(store, opts.Client),
		nav.TabCalendar: calendarscreen.New(plans, store, opts.Suggester, time.Now()),
		nav.TabSettings: settings.New(&profile),
	}

	return AppModel{
		navState: navState,
		store:    store,
		plans:    plans,
		profile:  &profile,
		opts:     opts,
		tabs:     tabs,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.tabs[nav.TabMain].Init()
}

// active returns the screen currently shown: the open detail screen, or the
// active tab's screen.
func (m AppModel) active() screen.Screen {
	if m.navState.InDetail() && m.detailView != nil {
		return m.detailView
	}
	return m.tabs[m.navState.ActiveTab()]
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.SelectSubjectMsg:
		m.navState.SelectSubject(msg.ID)
		m.detailView = detail.New(detail.Deps{
			Store:    m.store,
			Nav:      m.navState,
			Client:   m.opts.Client,
			Download: m.opts.DownloadDir,
		}, msg.ID)
		return m, m.detailView.Init()

	case nav.BackMsg:
		m.navState.Back()
		m.detailView = nil
		return m, nil

	case nav.SwitchTabMsg:
		return m.switchTab(msg.Tab)

	case nav.ToastMsg:
		m.toast = msg.Text
		m.toastErr = msg.IsErr
		m.toastGen++
		gen := m.toastGen
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{Gen: gen}
		})

	case toastExpiredMsg:
		if msg.Gen == m.toastGen {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			return m.switchTab(nav.TabMain)
		case "f2":
			return m.switchTab(nav.TabAdd)
		case "f3":
			return m.switchTab(nav.TabCalendar)
		case "f4":
			return m.switchTab(nav.TabSettings)
		}

		// Digit shortcuts only on the subject list, where no text input
		// can swallow them.
		if !m.navState.InDetail() && m.navState.ActiveTab() == nav.TabMain {
			switch msg.String() {
			case "1":
				return m.switchTab(nav.TabMain)
			case "2":
				return m.switchTab(nav.TabAdd)
			case "3":
				return m.switchTab(nav.TabCalendar)
			case "4":
				return m.switchTab(nav.TabSettings)
			}
		}
	}

	active := m.active()
	updated, cmd := active.Update(msg)

	if m.navState.InDetail() && m.detailView != nil {
		m.detailView = updated
	} else {
		m.tabs[m.navState.ActiveTab()] = updated
	}
	return m, cmd
}

// switchTab changes the bottom-bar tab. Any open detail screen is dropped;
// its subject's remembered view survives in the navigation state.
func (m AppModel) switchTab(t nav.Tab) (tea.Model, tea.Cmd) {
	m.navState.SetTab(t)
	m.detailView = nil
	return m, m.tabs[t].Init()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.active()
	header := layout.RenderHeader(active.Title(), m.width)

	hints := []layout.KeyHint{}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	hints = append(hints,
		layout.KeyHint{Key: "F1-F4", Description: "Tabs"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	footer := layout.RenderFooter(hints, m.width)

	tabBar := components.TabBar{Active: m.navState.ActiveTab()}.View(m.width)

	chrome := lipgloss.Height(header) + lipgloss.Height(tabBar) + lipgloss.Height(footer)
	contentHeight := m.height - chrome
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := active.View(m.width, contentHeight)
	if m.toast != "" {
		style := theme.Toast
		if m.toastErr {
			style = theme.Incorrect
		}
		toastLine := lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(style.Render(m.toast))
		content = toastLine + "\n" + content
	}

	v.SetContent(layout.RenderFrame(header, content, tabBar, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
