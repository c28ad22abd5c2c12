package detail

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/studypal/internal/nav"
	"github.com/dayoung/studypal/internal/notes"
	"github.com/dayoung/studypal/internal/screen"
	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/ui/layout"
	"github.com/dayoung/studypal/internal/ui/theme"
)

type downloadDoneMsg struct {
	Dest string
	Err  error
}

func (s *Screen) updateNotes(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.leaveActivity()

	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++

	case "d":
		return s, s.downloadCmd()
	}

	return s, nil
}

// downloadCmd fetches the summary PDF for this subject, when one exists.
func (s *Screen) downloadCmd() tea.Cmd {
	sub, ok := s.deps.Store.Get(s.id)
	if !ok || sub.Summary == nil || s.deps.Client == nil {
		return nil
	}

	docID := sub.Summary.DocumentID
	dest := filepath.Join(s.deps.Download, safeFilename(sub.Name)+"-summary.pdf")
	client := s.deps.Client
	return func() tea.Msg {
		err := client.DownloadSummaryPDF(context.Background(), docID, dest)
		return downloadDoneMsg{Dest: dest, Err: err}
	}
}

func (s *Screen) handleDownloadDone(msg downloadDoneMsg) tea.Cmd {
	if msg.Err != nil {
		return func() tea.Msg {
			return nav.ToastMsg{Text: "Download failed: " + msg.Err.Error(), IsErr: true}
		}
	}
	return func() tea.Msg {
		return nav.ToastMsg{Text: "Saved " + msg.Dest}
	}
}

func safeFilename(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, name)
}

func (s *Screen) notesKeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if sub, ok := s.deps.Store.Get(s.id); ok && sub.Summary != nil {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Download PDF"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// notesFor returns the sections to display: the backend summary when the
// subject has one, the built-in notes otherwise.
func notesFor(sub subject.Subject) []notes.Note {
	if sub.Summary != nil {
		return notes.FromSummary(sub.Summary)
	}
	return notes.MockNotes()
}

func (s *Screen) viewNotes(sub subject.Subject, width, height int) string {
	sections := notesFor(sub)
	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	var cards []string
	for _, n := range sections {
		rows := []string{
			theme.Body.Bold(true).Render(n.Title),
			"",
			theme.Body.Render(n.Content),
		}
		if len(n.KeyPoints) > 0 {
			rows = append(rows, "")
			for _, p := range n.KeyPoints {
				rows = append(rows, theme.Hint.Render("• "+p))
			}
		}
		cards = append(cards, theme.Card.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}

	all := lipgloss.JoinVertical(lipgloss.Left, cards...)

	// crude line-based scroll, clamped to the content
	lines := strings.Split(all, "\n")
	maxScroll := len(lines) - (height - 4)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	visible := strings.Join(lines[s.scroll:], "\n")

	header := theme.Subtitle.Render(fmt.Sprintf("%d sections", len(sections)))
	return center(lipgloss.JoinVertical(lipgloss.Center, header, "", visible), width)
}
