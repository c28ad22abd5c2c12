package detail

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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newFixture(t *testing.T) (*Screen, *subject.Store, *nav.State) {
	t.Helper()
	store := subject.NewStore(&seqIdentity{})
	sub, err := store.Create("Korean History", nil)
	require.NoError(t, err)

	navState := nav.NewState()
	navState.SelectSubject(sub.ID)

	scr := New(Deps{Store: store, Nav: navState}, sub.ID)
	return scr, store, navState
}

func TestDetail_StartsOnQuizEntryCard(t *testing.T) {
	scr, _, _ := newFixture(t)

	assert.Equal(t, subject.CategoryQuiz, scr.view.Category)
	assert.Equal(t, nav.ModeStart, scr.view.Mode)
	assert.Contains(t, scr.View(80, 24), "Start quiz")
}

func TestDetail_EnterStartsActivityAndRecordsView(t *testing.T) {
	scr, _, navState := newFixture(t)

	scr.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, nav.ModeActive, scr.view.Mode)
	require.NotNil(t, scr.runner)

	remembered := navState.ViewFor(navState.Selected())
	assert.Equal(t, nav.View{Category: subject.CategoryQuiz, Mode: nav.ModeActive}, remembered)
}

func TestDetail_CategorySwitchRecordsView(t *testing.T) {
	scr, _, navState := newFixture(t)

	scr.Update(specialKey(tea.KeyRight))

	assert.Equal(t, subject.CategoryNotes, scr.view.Category)
	assert.Equal(t, subject.CategoryNotes, navState.ViewFor(navState.Selected()).Category)
}

func TestDetail_RestoresRememberedView(t *testing.T) {
	store := subject.NewStore(&seqIdentity{})
	sub, err := store.Create("Math", nil)
	require.NoError(t, err)

	navState := nav.NewState()
	navState.SelectSubject(sub.ID)
	navState.SetView(nav.View{Category: subject.CategoryVocabulary, Mode: nav.ModeActive})

	scr := New(Deps{Store: store, Nav: navState}, sub.ID)

	assert.Equal(t, subject.CategoryVocabulary, scr.view.Category)
	assert.Equal(t, nav.ModeActive, scr.view.Mode)
	require.NotNil(t, scr.deck, "restoring into an active view rebuilds the deck")
	assert.Equal(t, 0, scr.deck.Index(), "activity state itself is not remembered")
}

func TestDetail_QuizCompleteReturnsToEntryCard(t *testing.T) {
	scr, _, navState := newFixture(t)

	scr.Update(specialKey(tea.KeyEnter)) // start quiz
	require.NotNil(t, scr.runner)

	for !scr.runner.Finished() {
		scr.Update(specialKey(tea.KeyDown))  // pick first option
		scr.Update(specialKey(tea.KeyEnter)) // reveal
		scr.Update(specialKey(tea.KeyEnter)) // advance
	}

	scr.Update(specialKey(tea.KeyEnter)) // leave the result card

	assert.Equal(t, nav.ModeStart, scr.view.Mode)
	assert.Nil(t, scr.runner, "quiz state is dropped on exit")
	assert.Equal(t, nav.ModeStart, navState.ViewFor(navState.Selected()).Mode)
}

func TestDetail_EscFromEntryCardGoesBack(t *testing.T) {
	scr, _, _ := newFixture(t)

	_, cmd := scr.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.IsType(t, nav.BackMsg{}, msg)
}

func TestDetail_EscFromActivityReturnsToEntryCard(t *testing.T) {
	scr, _, _ := newFixture(t)

	scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(specialKey(tea.KeyEscape))

	assert.Nil(t, cmd, "leaving an activity stays on the detail screen")
	assert.Equal(t, nav.ModeStart, scr.view.Mode)
}

func TestDetail_TodoToggleAndDelete(t *testing.T) {
	scr, store, _ := newFixture(t)
	id := store.List()[0].ID
	store.AddTodo(id, subject.CategoryQuiz, "first")
	store.AddTodo(id, subject.CategoryQuiz, "second")

	scr.Update(keyPress(' '))
	sub, _ := store.Get(id)
	assert.True(t, sub.Todos.Quiz[0].Completed)

	scr.Update(keyPress('x'))
	sub, _ = store.Get(id)
	require.Len(t, sub.Todos.Quiz, 1)
	assert.Equal(t, "second", sub.Todos.Quiz[0].Text)
}

func TestDetail_AddTodoViaInput(t *testing.T) {
	scr, store, _ := newFixture(t)
	id := store.List()[0].ID

	scr.Update(keyPress('a'))
	require.True(t, scr.addingTodo)

	for _, r := range "read ch. 3" {
		scr.Update(keyPress(r))
	}
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	assert.False(t, scr.addingTodo)
	require.NotNil(t, cmd, "a toast confirms the added task")
	sub, _ := store.Get(id)
	require.Len(t, sub.Todos.Quiz, 1)
	assert.Equal(t, "read ch. 3", sub.Todos.Quiz[0].Text)
}

func TestDetail_BlankTodoRefused(t *testing.T) {
	scr, store, _ := newFixture(t)
	id := store.List()[0].ID

	scr.Update(keyPress('a'))
	scr.Update(keyPress(' '))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	assert.Nil(t, cmd)
	sub, _ := store.Get(id)
	assert.Empty(t, sub.Todos.Quiz)
}

func TestDetail_SetAndClearDday(t *testing.T) {
	scr, store, _ := newFixture(t)
	id := store.List()[0].ID

	scr.Update(keyPress('d'))
	require.True(t, scr.editingDay)
	for _, r := range "2026-09-15" {
		scr.Update(keyPress(r))
	}
	scr.Update(specialKey(tea.KeyEnter))

	sub, _ := store.Get(id)
	require.NotNil(t, sub.DDay)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local), *sub.DDay)

	scr.Update(keyPress('d'))
	scr.dayInput.Reset()
	scr.Update(specialKey(tea.KeyEnter))

	sub, _ = store.Get(id)
	assert.Nil(t, sub.DDay)
}

func TestDetail_InvalidDdayShowsError(t *testing.T) {
	scr, store, _ := newFixture(t)
	id := store.List()[0].ID

	scr.Update(keyPress('d'))
	for _, r := range "next friday" {
		scr.Update(keyPress(r))
	}
	scr.Update(specialKey(tea.KeyEnter))

	assert.True(t, scr.editingDay, "invalid date keeps the editor open")
	assert.NotEmpty(t, scr.dayErr)
	sub, _ := store.Get(id)
	assert.Nil(t, sub.DDay)
}

func TestDetail_ProgressNudgeClamps(t *testing.T) {
	scr, store, _ := newFixture(t)
	id := store.List()[0].ID

	for i := 0; i < 25; i++ {
		scr.Update(keyPress('+'))
	}
	sub, _ := store.Get(id)
	assert.Equal(t, 100, sub.Progress)

	for i := 0; i < 25; i++ {
		scr.Update(keyPress('-'))
	}
	sub, _ = store.Get(id)
	assert.Equal(t, 0, sub.Progress)
}
