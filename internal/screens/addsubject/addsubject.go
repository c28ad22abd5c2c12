// Package addsubject implements the add-subject screen: name, optional
// description, and an optional PDF whose summary is attached to the new
// subject.
package addsubject

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/summarize"
	"github.com/dayoung/studypal/internal/ui/components"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

const (
	fieldName = iota
	fieldDescription
	fieldPath
	fieldCount
)

// summaryReadyMsg carries the summarization result back onto the event
// loop. Summary is nil for non-PDF (or file-less) creations.
type summaryReadyMsg struct {
	Name    string
	Summary *summarize.HierarchicalSummary
	Err     error
}

// AddScreen collects the new-subject form and drives the summarize call.
type AddScreen struct {
	store  *subject.Store
	client Summarizer

	inputs     [fieldCount]components.TextInput
	focus      int
	processing bool
	errMsg     string
}

var _ screen.Screen = (*AddScreen)(nil)
var _ screen.KeyHintProvider = (*AddScreen)(nil)

// New creates the add-subject screen.
func New(store *subject.Store, client Summarizer) *AddScreen {
	a := &AddScreen{store: store, client: client}
	a.inputs[fieldName] = components.NewTextInput("e.g. Korean History, English Grammar", false, 60)
	a.inputs[fieldDescription] = components.NewTextInput("Short description (optional)", false, 120)
	a.inputs[fieldPath] = components.NewTextInput("Path to a PDF to summarize (optional)", false, 200)
	return a
}

func (a *AddScreen) Init() tea.Cmd {
	return a.inputs[fieldName].Focus()
}

func (a *AddScreen) Title() string {
	return "Add Subject"
}

func (a *AddScreen) KeyHints() []layout.KeyHint {
	if a.processing {
		return []layout.KeyHint{{Key: "…", Description: "Analyzing file"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Clear"},
	}
}

func (a *AddScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryReadyMsg:
		return a.handleSummaryReady(msg)

	case tea.KeyMsg:
		if a.processing {
			return a, nil
		}
		switch msg.String() {
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return a.submit()
		case "esc":
			a.clearForm()
			return a, nil
		}
	}

	if a.processing {
		return a, nil
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

// submit validates locally, then kicks off the summarize round-trip as a
// single sequential command. The subject is only committed once the result
// message arrives, so a failure never leaves a partial subject behind.
func (a *AddScreen) submit() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(a.inputs[fieldName].Value())
	if name == "" {
		a.errMsg = "Subject name is required"
		return a, nil
	}

	path := strings.TrimSpace(a.inputs[fieldPath].Value())
	a.errMsg = ""
	a.processing = true

	client := a.client
	return a, func() tea.Msg {
		summary, err := PrepareSummary(context.Background(), client, path)
		return summaryReadyMsg{Name: name, Summary: summary, Err: err}
	}
}

func (a *AddScreen) handleSummaryReady(msg summaryReadyMsg) (screen.Screen, tea.Cmd) {
	a.processing = false

	if msg.Err != nil {
		a.errMsg = msg.Err.Error()
		return a, nil
	}

	sub, err := a.store.Create(msg.Name, msg.Summary)
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}

	toast := fmt.Sprintf("Subject %q added!", sub.Name)
	if sub.Summary != nil {
		toast = fmt.Sprintf("Subject %q added! AI notes are ready.", sub.Name)
	}

	a.clearForm()
	return a, tea.Batch(
		func() tea.Msg { return nav.ToastMsg{Text: toast} },
		func() tea.Msg { return nav.SwitchTabMsg{Tab: nav.TabMain} },
	)
}

func (a *AddScreen) setFocus(i int) tea.Cmd {
	a.inputs[a.focus].Blur()
	a.focus = i
	return a.inputs[a.focus].Focus()
}

func (a *AddScreen) clearForm() {
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
	a.errMsg = ""
	a.setFocus(fieldName)
}

func (a *AddScreen) View(width, height int) string {
	labels := [fieldCount]string{"Subject name *", "Description", "Study material (PDF)"}

	var rows []string
	for i, input := range a.inputs {
		label := theme.Body.Render(labels[i])
		if i == a.focus && !a.processing {
			label = theme.Selected.Render(labels[i])
		}
		rows = append(rows, label, input.View(), "")
	}

	if a.processing {
		rows = append(rows, theme.Hint.Render("AI is analyzing the file and preparing notes..."))
	} else if a.errMsg != "" {
		rows = append(rows, theme.Incorrect.Render(a.errMsg))
	}

	form := theme.Card.Width(min(width-8, 70)).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(form)
}
