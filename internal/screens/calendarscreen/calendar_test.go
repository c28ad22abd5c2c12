package calendarscreen

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/planner"
	"github.com/dayoung/studypal/internal/subject"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("plan-%d", s.n)
}

func (s *seqIDs) NewColor() string { return "#3b82f6" }

type fixedSuggester struct {
	title string
	err   error
}

func (f fixedSuggester) Suggest(context.Context, []string, time.Time) (string, error) {
	return f.title, f.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newScreen(sg fixedSuggester) (*CalendarScreen, *planner.Store, time.Time) {
	ids := &seqIDs{}
	plans := planner.NewStore(ids)
	subjects := subject.NewStore(ids)
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	return New(plans, subjects, sg, now), plans, now
}

func TestCalendar_FocusStartsToday(t *testing.T) {
	scr, _, now := newScreen(fixedSuggester{})
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), scr.focus)
	assert.Equal(t, now.Day(), scr.focus.Day())
}

func TestCalendar_ArrowsMoveFocus(t *testing.T) {
	scr, _, _ := newScreen(fixedSuggester{})

	scr.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 29, scr.focus.Day())

	scr.Update(specialKey(tea.KeyDown))
	assert.Equal(t, time.September, scr.focus.Month())
	assert.Equal(t, 5, scr.focus.Day())

	scr.Update(specialKey(tea.KeyUp))
	scr.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 28, scr.focus.Day())
}

func TestCalendar_AddPlanForFocusedDay(t *testing.T) {
	scr, plans, _ := newScreen(fixedSuggester{})

	scr.Update(specialKey(tea.KeyRight)) // move off today
	scr.Update(keyPress('a'))
	require.True(t, scr.adding)

	for _, r := range "Mock exam" {
		scr.Update(keyPress(r))
	}
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	require.NotNil(t, cmd)
	day := scr.focus
	got := plans.On(day)
	require.Len(t, got, 1)
	assert.Equal(t, "Mock exam", got[0].Title)
	assert.False(t, got[0].AI)
}

func TestCalendar_BlankPlanRefused(t *testing.T) {
	scr, plans, now := newScreen(fixedSuggester{})

	scr.Update(keyPress('a'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, plans.On(now))
}

func TestCalendar_SuggestionAddsAIPlan(t *testing.T) {
	scr, plans, now := newScreen(fixedSuggester{title: "Review math problem sets"})

	_, cmd := scr.Update(keyPress('s'))
	require.NotNil(t, cmd)
	require.True(t, scr.suggesting)

	msg := cmd()
	_, toastCmd := scr.Update(msg)

	assert.False(t, scr.suggesting)
	require.NotNil(t, toastCmd)
	got := plans.On(now)
	require.Len(t, got, 1)
	assert.Equal(t, "Review math problem sets", got[0].Title)
	assert.True(t, got[0].AI)
}

func TestCalendar_SuggestionFailureAddsNothing(t *testing.T) {
	scr, plans, now := newScreen(fixedSuggester{err: errors.New("no api key")})

	_, cmd := scr.Update(keyPress('s'))
	require.NotNil(t, cmd)

	_, toastCmd := scr.Update(cmd())

	assert.Empty(t, plans.On(now))
	require.NotNil(t, toastCmd)
	toast, ok := toastCmd().(nav.ToastMsg)
	require.True(t, ok)
	assert.True(t, toast.IsErr)
}

func TestCalendar_SecondSuggestWhilePendingIgnored(t *testing.T) {
	scr, _, _ := newScreen(fixedSuggester{title: "x"})

	_, first := scr.Update(keyPress('s'))
	require.NotNil(t, first)
	_, second := scr.Update(keyPress('s'))
	assert.Nil(t, second)
}

func TestCalendar_ViewMarksPlanDays(t *testing.T) {
	scr, plans, now := newScreen(fixedSuggester{})
	plans.Add("Something", now)

	out := scr.View(80, 24)
	assert.Contains(t, out, "August 2026")
	assert.Contains(t, out, "Something")
}
