package subjects

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/subject"
)

type seqIdentity struct{ n int }

func (s *seqIdentity) NewID() string {
	s.n++
	return string(rune('a' + s.n - 1))
}

func (s *seqIdentity) NewColor() string { return "#3b82f6" }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestList_EnterSelectsCursorSubject(t *testing.T) {
	store := subject.NewStore(&seqIdentity{})
	store.Create("First", nil)
	store.Create("Second", nil)
	scr := New(store)

	scr.Update(specialKey(tea.KeyDown))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	require.NotNil(t, cmd)
	msg, ok := cmd().(nav.SelectSubjectMsg)
	require.True(t, ok)
	assert.Equal(t, store.List()[1].ID, msg.ID)
}

func TestList_CursorClampsAtEnds(t *testing.T) {
	store := subject.NewStore(&seqIdentity{})
	store.Create("Only", nil)
	scr := New(store)

	scr.Update(specialKey(tea.KeyUp))
	scr.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 0, scr.cursor)
}

func TestList_EmptyStoreShowsHint(t *testing.T) {
	store := subject.NewStore(&seqIdentity{})
	scr := New(store)

	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, scr.View(80, 24), "No subjects yet")
}

func TestList_ViewShowsProgressAndDday(t *testing.T) {
	store := subject.NewStore(&seqIdentity{})
	subject.Seed(store, time.Now())
	scr := New(store)

	out := scr.View(80, 24)
	assert.Contains(t, out, "Korean History")
	assert.Contains(t, out, "65%")
	assert.Contains(t, out, "D-")
}
