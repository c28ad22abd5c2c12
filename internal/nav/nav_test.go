package nav

import (
	"testing"

	"github.com/dayoung/studypal/internal/subject"
)

func TestState_Initial(t *testing.T) {
	s := NewState()
	if s.ActiveTab() != TabMain {
		t.Errorf("ActiveTab = %v, want TabMain", s.ActiveTab())
	}
	if s.InDetail() {
		t.Error("should not start in detail mode")
	}
	if v := s.ViewFor("anything"); v != DefaultView() {
		t.Errorf("ViewFor = %+v, want default", v)
	}
}

func TestState_SelectKeepsTab(t *testing.T) {
	s := NewState()
	s.SetTab(TabCalendar)
	s.SelectSubject("sub-1")

	if !s.InDetail() || s.Selected() != "sub-1" {
		t.Fatal("expected detail mode for sub-1")
	}
	if s.ActiveTab() != TabCalendar {
		t.Error("entering detail must not change the active tab")
	}
}

func TestState_TabChangePreservesViewMemory(t *testing.T) {
	s := NewState()
	s.SelectSubject("sub-1")
	s.SetView(View{Category: subject.CategoryNotes, Mode: ModeActive})

	s.SetTab(TabSettings)

	if s.InDetail() {
		t.Error("tab change must exit detail mode")
	}
	if s.ActiveTab() != TabSettings {
		t.Errorf("ActiveTab = %v, want TabSettings", s.ActiveTab())
	}
	got := s.ViewFor("sub-1")
	if got.Category != subject.CategoryNotes || got.Mode != ModeActive {
		t.Errorf("view memory = %+v, want notes/active preserved across tab change", got)
	}
}

func TestState_BackClearsViewMemory(t *testing.T) {
	s := NewState()
	s.SelectSubject("sub-1")
	s.SetView(View{Category: subject.CategoryVocabulary, Mode: ModeActive})

	s.Back()

	if s.InDetail() {
		t.Error("back must exit detail mode")
	}
	if s.HasView("sub-1") {
		t.Error("back must clear the subject's view memory")
	}
	if v := s.ViewFor("sub-1"); v != DefaultView() {
		t.Errorf("ViewFor after back = %+v, want default", v)
	}
}

func TestState_ViewMemoryPerSubject(t *testing.T) {
	s := NewState()
	s.SelectSubject("sub-1")
	s.SetView(View{Category: subject.CategoryNotes, Mode: ModeStart})
	s.SetTab(TabMain)

	s.SelectSubject("sub-2")
	s.SetView(View{Category: subject.CategoryVocabulary, Mode: ModeActive})
	s.Back()

	if got := s.ViewFor("sub-1"); got.Category != subject.CategoryNotes {
		t.Errorf("sub-1 view = %+v, want notes", got)
	}
	if s.HasView("sub-2") {
		t.Error("sub-2 memory should be gone after back")
	}
}

func TestState_SetViewOutsideDetail(t *testing.T) {
	s := NewState()
	s.SetView(View{Category: subject.CategoryNotes, Mode: ModeActive})
	if s.HasView("") {
		t.Error("SetView outside detail mode must be a no-op")
	}
}

func TestState_BackOutsideDetail(t *testing.T) {
	s := NewState()
	s.Back() // no-op, must not panic
	if s.InDetail() {
		t.Error("still not in detail mode")
	}
}
