// Package nav tracks which top-level screen is shown: the active tab, the
// optionally selected subject (detail mode), and each subject's remembered
// sub-view.
package nav

import "github.com/dayoung/studypal/internal/subject"

// Tab is one of the four bottom-bar destinations.
type Tab int

const (
	TabMain Tab = iota
	TabAdd
	TabCalendar
	TabSettings
)

// String returns the tab's display name.
func (t Tab) String() string {
	switch t {
	case TabMain:
		return "Home"
	case TabAdd:
		return "Add"
	case TabCalendar:
		return "Calendar"
	case TabSettings:
		return "Settings"
	}
	return "?"
}

// Mode distinguishes a category's entry card from its live activity.
type Mode int

const (
	ModeStart Mode = iota
	ModeActive
)

// View is a subject's remembered sub-view: which category tab it sits on and
// whether the activity is running.
type View struct {
	Category subject.Category
	Mode     Mode
}

// DefaultView is shown for subjects with no remembered view.
func DefaultView() View {
	return View{Category: subject.CategoryQuiz, Mode: ModeStart}
}

// State is the navigation state machine. Exactly one of tab screen or
// subject detail is visible at a time.
type State struct {
	active   Tab
	selected string // subject id, "" when no detail is open
	views    map[string]View
}

// NewState starts on the main tab with nothing selected.
func NewState() *State {
	return &State{views: make(map[string]View)}
}

// ActiveTab returns the current bottom-bar tab.
func (s *State) ActiveTab() Tab { return s.active }

// InDetail reports whether a subject detail screen is open.
func (s *State) InDetail() bool { return s.selected != "" }

// Selected returns the open subject's id, or "" outside detail mode.
func (s *State) Selected() string { return s.selected }

// SelectSubject enters detail mode for a subject. The active tab is left
// untouched; it only matters again once detail mode is exited.
func (s *State) SelectSubject(id string) {
	s.selected = id
}

// Back leaves detail mode via the explicit back action: the selection is
// cleared and the subject's remembered view is reset, so the next visit
// starts fresh on the quiz entry card.
func (s *State) Back() {
	if s.selected == "" {
		return
	}
	delete(s.views, s.selected)
	s.selected = ""
}

// SetTab switches the bottom-bar tab. Any open detail screen is exited, but
// its subject's remembered view survives: only the explicit back action
// clears it. The asymmetry with Back is intentional.
func (s *State) SetTab(t Tab) {
	s.active = t
	s.selected = ""
}

// SetView records the selected subject's current sub-view. No-op outside
// detail mode.
func (s *State) SetView(v View) {
	if s.selected == "" {
		return
	}
	s.views[s.selected] = v
}

// ViewFor returns a subject's remembered view, or the default.
func (s *State) ViewFor(id string) View {
	if v, ok := s.views[id]; ok {
		return v
	}
	return DefaultView()
}

// HasView reports whether a subject has a remembered view.
func (s *State) HasView(id string) bool {
	_, ok := s.views[id]
	return ok
}
