// Package detail implements the subject detail screen: category tabs with
// entry cards and todo lists, and the live quiz, notes, and flashcard views.
package detail

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/dday"
	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/quiz"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/summarize"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
	"github.com/dayoung/studypal/internal/vocab"
)

// Deps bundles what the detail screen needs from the app.
type Deps struct {
	Store    *subject.Store
	Nav      *nav.State
	Client   *summarize.Client
	Download string // directory for saved summary PDFs, "" = working dir
}

// Screen is the subject detail screen for one subject.
type Screen struct {
	deps Deps
	id   string
	view nav.View

	// start-mode interaction
	todoCursor int
	addingTodo bool
	todoInput  components.TextInput
	editingDay bool
	dayInput   components.TextInput
	dayErr     string

	// active-mode sub-states, created lazily on entry
	runner *quiz.Runner
	deck   *vocab.Deck
	scroll int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the detail screen for a subject, restoring its remembered
// view. Activity state (a running quiz, a flipped card) is not remembered
// across visits; only the view token is.
func New(deps Deps, id string) *Screen {
	s := &Screen{
		deps:      deps,
		id:        id,
		view:      deps.Nav.ViewFor(id),
		todoInput: components.NewTextInput("New task", false, 80),
		dayInput:  components.NewTextInput("YYYY-MM-DD (empty clears)", false, 10),
	}
	s.ensureActivity()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	if sub, ok := s.deps.Store.Get(s.id); ok {
		return sub.Name
	}
	return "Subject"
}

// ensureActivity builds the sub-state the current view needs.
func (s *Screen) ensureActivity() {
	if s.view.Mode != nav.ModeActive {
		return
	}
	switch s.view.Category {
	case subject.CategoryQuiz:
		if s.runner == nil {
			s.runner = quiz.NewRunner(quiz.DefaultQuestions())
		}
	case subject.CategoryVocabulary:
		if s.deck == nil {
			s.deck = vocab.NewDeck(vocab.DefaultCards())
		}
	}
}

// setView records a view change in the navigation memory.
func (s *Screen) setView(v nav.View) {
	s.view = v
	s.deps.Nav.SetView(v)
	s.ensureActivity()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if dm, ok := msg.(downloadDoneMsg); ok {
		return s, s.handleDownloadDone(dm)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.addingTodo {
			var cmd tea.Cmd
			s.todoInput, cmd = s.todoInput.Update(msg)
			return s, cmd
		}
		if s.editingDay {
			var cmd tea.Cmd
			s.dayInput, cmd = s.dayInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.addingTodo {
		return s.updateTodoEntry(kmsg)
	}
	if s.editingDay {
		return s.updateDayEntry(kmsg)
	}

	if s.view.Mode == nav.ModeActive {
		switch s.view.Category {
		case subject.CategoryQuiz:
			return s.updateQuiz(kmsg)
		case subject.CategoryNotes:
			return s.updateNotes(kmsg)
		case subject.CategoryVocabulary:
			return s.updateVocab(kmsg)
		}
	}

	return s.updateStart(kmsg)
}

// updateStart handles keys on the entry-card view.
func (s *Screen) updateStart(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sub, ok := s.deps.Store.Get(s.id)
	if !ok {
		return s, nil
	}
	todos := sub.Todos.ByCategory(s.view.Category)

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return nav.BackMsg{} }

	case "left", "h":
		s.switchCategory(-1)
	case "right", "l":
		s.switchCategory(1)

	case "enter":
		s.setView(nav.View{Category: s.view.Category, Mode: nav.ModeActive})

	case "up", "k":
		if s.todoCursor > 0 {
			s.todoCursor--
		}
	case "down", "j":
		if s.todoCursor < len(todos)-1 {
			s.todoCursor++
		}

	case "a":
		s.addingTodo = true
		s.todoInput.Reset()
		return s, s.todoInput.Focus()

	case " ", "space":
		if s.todoCursor < len(todos) {
			s.deps.Store.ToggleTodo(s.id, s.view.Category, todos[s.todoCursor].ID)
		}

	case "x":
		if s.todoCursor < len(todos) {
			s.deps.Store.DeleteTodo(s.id, s.view.Category, todos[s.todoCursor].ID)
			if s.todoCursor >= len(todos)-1 && s.todoCursor > 0 {
				s.todoCursor--
			}
		}

	case "d":
		s.editingDay = true
		s.dayErr = ""
		s.dayInput.Reset()
		if sub.DDay != nil {
			s.dayInput.SetValue(sub.DDay.Format("2006-01-02"))
		}
		return s, s.dayInput.Focus()

	case "+", "=":
		s.deps.Store.SetProgress(s.id, sub.Progress+5)
	case "-":
		s.deps.Store.SetProgress(s.id, sub.Progress-5)
	}

	return s, nil
}

func (s *Screen) switchCategory(dir int) {
	order := subject.Categories()
	for i, c := range order {
		if c == s.view.Category {
			next := (i + dir + len(order)) % len(order)
			s.todoCursor = 0
			s.setView(nav.View{Category: order[next], Mode: nav.ModeStart})
			return
		}
	}
}

func (s *Screen) updateTodoEntry(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.addingTodo = false
		return s, nil
	case "enter":
		text := s.todoInput.Value()
		s.addingTodo = false
		if _, ok := s.deps.Store.AddTodo(s.id, s.view.Category, text); ok {
			return s, func() tea.Msg { return nav.ToastMsg{Text: "Task added!"} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.todoInput, cmd = s.todoInput.Update(kmsg)
	return s, cmd
}

func (s *Screen) updateDayEntry(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.editingDay = false
		return s, nil
	case "enter":
		value := s.dayInput.Value()
		if value == "" {
			s.deps.Store.SetDDay(s.id, nil)
			s.editingDay = false
			return s, nil
		}
		target, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			s.dayErr = "Use the YYYY-MM-DD format"
			return s, nil
		}
		s.deps.Store.SetDDay(s.id, &target)
		s.editingDay = false
		return s, nil
	}

	var cmd tea.Cmd
	s.dayInput, cmd = s.dayInput.Update(kmsg)
	return s, cmd
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.addingTodo || s.editingDay {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.view.Mode == nav.ModeActive {
		switch s.view.Category {
		case subject.CategoryQuiz:
			return s.quizKeyHints()
		case subject.CategoryNotes:
			return s.notesKeyHints()
		default:
			return s.vocabKeyHints()
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "Enter", Description: "Start"},
		{Key: "a/Space/x", Description: "Tasks"},
		{Key: "d", Description: "D-day"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) View(width, height int) string {
	sub, ok := s.deps.Store.Get(s.id)
	if !ok {
		return theme.Subtitle.Render("Subject not found")
	}

	header := s.renderHeader(sub, width)

	var body string
	if s.view.Mode == nav.ModeActive {
		switch s.view.Category {
		case subject.CategoryQuiz:
			body = s.viewQuiz(width)
		case subject.CategoryNotes:
			body = s.viewNotes(sub, width, height)
		case subject.CategoryVocabulary:
			body = s.viewVocab(width)
		}
	} else {
		body = s.viewStart(sub, width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (s *Screen) renderHeader(sub subject.Subject, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sub.Name)
	progress := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Progress: %d%%", sub.Progress))

	badge := ""
	if days, ok := dday.DaysRemaining(sub.DDay, time.Now()); ok {
		badge = "   " + theme.Badge.Render(dday.Label(days))
	}

	line := "  " + name + "   " + progress + badge
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border).
		Render(line)
}

// viewStart renders the category tab row, the entry card, and the todo list.
func (s *Screen) viewStart(sub subject.Subject, width int) string {
	var tabs []string
	for _, c := range subject.Categories() {
		label := categoryLabel(c)
		if c == s.view.Category {
			tabs = append(tabs, theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(label))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	card := theme.Card.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render(categoryLabel(s.view.Category)),
			"",
			theme.Subtitle.Render(categoryBlurb(s.view.Category)),
			"",
			components.NewButton(categoryAction(s.view.Category), true, nil).View(),
		))

	todos := sub.Todos.ByCategory(s.view.Category)
	checklist := components.Checklist{Todos: todos, Cursor: s.todoCursor, Focused: !s.addingTodo && !s.editingDay}
	todoCard := theme.Card.Width(cardWidth).Render(
		theme.Body.Bold(true).Render(categoryLabel(s.view.Category)+" tasks") + "\n\n" + checklist.View())

	sections := []string{tabRow, "", card, "", todoCard}

	if s.addingTodo {
		sections = append(sections, "", theme.Body.Render("New task: ")+s.todoInput.View())
	}
	if s.editingDay {
		entry := theme.Body.Render("D-day: ") + s.dayInput.View()
		if s.dayErr != "" {
			entry += "\n" + theme.Incorrect.Render(s.dayErr)
		}
		sections = append(sections, "", entry)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func categoryLabel(c subject.Category) string {
	switch c {
	case subject.CategoryQuiz:
		return "Quiz"
	case subject.CategoryNotes:
		return "Notes"
	case subject.CategoryVocabulary:
		return "Vocabulary"
	}
	return string(c)
}

func categoryBlurb(c subject.Category) string {
	switch c {
	case subject.CategoryQuiz:
		return "Review what you learned with an AI-generated quiz"
	case subject.CategoryNotes:
		return "Read the organized summary of your material"
	case subject.CategoryVocabulary:
		return "Review key terms and concepts with flashcards"
	}
	return ""
}

func categoryAction(c subject.Category) string {
	switch c {
	case subject.CategoryQuiz:
		return "Start quiz"
	case subject.CategoryNotes:
		return "Open notes"
	case subject.CategoryVocabulary:
		return "Open flashcards"
	}
	return "Start"
}
