package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/subject"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(Options{})
	m.width = 80
	m.height = 24
	return m
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(AppModel)
	require.True(t, ok)
	return model, cmd
}

func TestApp_StartsOnSeededSubjectList(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, nav.TabMain, m.navState.ActiveTab())
	assert.False(t, m.navState.InDetail())
	assert.Equal(t, 3, m.store.Len())
}

func TestApp_SelectOpensDetail(t *testing.T) {
	m := newTestModel(t)
	id := m.store.List()[0].ID

	m, _ = update(t, m, nav.SelectSubjectMsg{ID: id})

	assert.True(t, m.navState.InDetail())
	require.NotNil(t, m.detailView)
	assert.Equal(t, m.store.List()[0].Name, m.detailView.Title())
}

func TestApp_TabChangePreservesViewMemory(t *testing.T) {
	m := newTestModel(t)
	id := m.store.List()[0].ID

	m, _ = update(t, m, nav.SelectSubjectMsg{ID: id})
	// move the subject onto its notes view
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	require.Equal(t, subject.CategoryNotes, m.navState.ViewFor(id).Category)

	m, _ = update(t, m, nav.SwitchTabMsg{Tab: nav.TabCalendar})
	assert.False(t, m.navState.InDetail())
	assert.Nil(t, m.detailView)
	assert.True(t, m.navState.HasView(id), "tab change keeps the remembered view")

	m, _ = update(t, m, nav.SwitchTabMsg{Tab: nav.TabMain})
	m, _ = update(t, m, nav.SelectSubjectMsg{ID: id})
	assert.Equal(t, subject.CategoryNotes, m.navState.ViewFor(id).Category)
}

func TestApp_BackClearsViewMemory(t *testing.T) {
	m := newTestModel(t)
	id := m.store.List()[0].ID

	m, _ = update(t, m, nav.SelectSubjectMsg{ID: id})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	m, _ = update(t, m, nav.BackMsg{})

	assert.False(t, m.navState.InDetail())
	assert.False(t, m.navState.HasView(id), "explicit back resets the subject's view")
}

func TestApp_ToastLifecycle(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, nav.ToastMsg{Text: "Saved!"})
	require.NotNil(t, cmd, "a toast schedules its own expiry")
	assert.Equal(t, "Saved!", m.toast)

	// an expiry for an older toast must not clear a newer one
	m, _ = update(t, m, nav.ToastMsg{Text: "Newer"})
	m, _ = update(t, m, toastExpiredMsg{Gen: m.toastGen - 1})
	assert.Equal(t, "Newer", m.toast)

	m, _ = update(t, m, toastExpiredMsg{Gen: m.toastGen})
	assert.Empty(t, m.toast)
}

func TestApp_DigitShortcutsOnlyOnMainList(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, nav.TabCalendar, m.navState.ActiveTab())

	// on the calendar, digits must reach the screen, not the tab bar
	m, _ = update(t, m, tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Equal(t, nav.TabCalendar, m.navState.ActiveTab())

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyF1})
	assert.Equal(t, nav.TabMain, m.navState.ActiveTab())
}
