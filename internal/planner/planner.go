// Package planner keeps the calendar of study plans.
package planner

import (
	"strings"
	"time"
)

// IDGen supplies ids for new plans. subject.Identity satisfies it.
type IDGen interface {
	NewID() string
}

// Plan is a single study plan pinned to a calendar day.
type Plan struct {
	ID    string
	Title string
	Date  time.Time
	AI    bool // true when the plan came from the suggester
}

// Store is the in-memory plan collection.
type Store struct {
	plans []Plan
	ids   IDGen
}

// NewStore creates an empty Store.
func NewStore(ids IDGen) *Store {
	return &Store{ids: ids}
}

// Add appends a user-entered plan for the given day. Blank titles are
// refused with no state change.
func (s *Store) Add(title string, date time.Time) (Plan, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Plan{}, false
	}
	p := Plan{ID: s.ids.NewID(), Title: title, Date: date}
	s.plans = append(s.plans, p)
	return p, true
}

// AddSuggested appends a suggester-produced plan for the given day.
func (s *Store) AddSuggested(title string, date time.Time) Plan {
	p := Plan{ID: s.ids.NewID(), Title: title, Date: date, AI: true}
	s.plans = append(s.plans, p)
	return p
}

// On returns the plans for the same calendar day as date, insertion order.
func (s *Store) On(date time.Time) []Plan {
	var out []Plan
	for _, p := range s.plans {
		if sameDay(p.Date, date) {
			out = append(out, p)
		}
	}
	return out
}

// Seed loads the demo plan shown on first launch.
func (s *Store) Seed(now time.Time) {
	s.AddSuggested("Review Korean History chapter 1", now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
