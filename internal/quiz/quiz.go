// Package quiz implements a scored walk through a fixed question set.
package quiz

// Question is a single multiple-choice quiz question.
type Question struct {
	Prompt  string
	Options []string
	Correct int
}

// NoSelection marks the absence of a picked option.
const NoSelection = -1

// Runner walks a question set in order: pick an option, reveal the answer,
// advance. The score for a question is fixed at reveal time and never
// re-evaluated.
type Runner struct {
	questions []Question
	index     int
	selected  int
	revealed  bool
	finished  bool
	score     int
}

// NewRunner creates a runner positioned on the first question with nothing
// selected.
func NewRunner(questions []Question) *Runner {
	return &Runner{
		questions: questions,
		selected:  NoSelection,
		finished:  len(questions) == 0,
	}
}

// Current returns the question under the cursor, or nil once finished.
func (r *Runner) Current() *Question {
	if r.finished {
		return nil
	}
	return &r.questions[r.index]
}

// Index returns the zero-based position of the current question.
func (r *Runner) Index() int { return r.index }

// Total returns the number of questions in the set.
func (r *Runner) Total() int { return len(r.questions) }

// Score returns the number of correct answers revealed so far.
func (r *Runner) Score() int { return r.score }

// Selected returns the picked option index, or NoSelection.
func (r *Runner) Selected() int { return r.selected }

// Revealed reports whether the current question's answer has been shown.
func (r *Runner) Revealed() bool { return r.revealed }

// Finished reports whether the last question has been advanced past.
func (r *Runner) Finished() bool { return r.finished }

// Select records an option pick. Ignored after reveal or after the run has
// finished.
func (r *Runner) Select(option int) {
	if r.finished || r.revealed {
		return
	}
	if option < 0 || option >= len(r.questions[r.index].Options) {
		return
	}
	r.selected = option
}

// CanSubmit reports whether a selection exists to score. Submitting without
// a selection is a disabled precondition, not an error.
func (r *Runner) CanSubmit() bool {
	return !r.finished && !r.revealed && r.selected != NoSelection
}

// Submit reveals the current question and fixes its score contribution.
// Returns false when no selection exists.
func (r *Runner) Submit() bool {
	if !r.CanSubmit() {
		return false
	}
	r.revealed = true
	if r.selected == r.questions[r.index].Correct {
		r.score++
	}
	return true
}

// Advance moves past a revealed question: either to the next question with a
// cleared selection, or into the finished state after the last one. No-op
// unless the current question is revealed.
func (r *Runner) Advance() {
	if r.finished || !r.revealed {
		return
	}
	if r.index == len(r.questions)-1 {
		r.finished = true
		return
	}
	r.index++
	r.selected = NoSelection
	r.revealed = false
}

// Restart returns to the first question with score zero and all reveals
// cleared.
func (r *Runner) Restart() {
	r.index = 0
	r.selected = NoSelection
	r.revealed = false
	r.finished = len(r.questions) == 0
	r.score = 0
}
