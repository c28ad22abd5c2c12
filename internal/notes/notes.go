// Package notes builds the content shown in the notes view.
package notes

import (
	"fmt"

	"github.com/dayoung/studypal/internal/summarize"
)

// Note is one study-note section.
type Note struct {
	Title     string
	Content   string
	KeyPoints []string
}

// FromSummary converts a backend summary into note sections: the note-style
// narrative first, then one section per source page, in response order.
func FromSummary(s *summarize.HierarchicalSummary) []Note {
	if s == nil {
		return nil
	}

	out := []Note{{
		Title:   "Overview",
		Content: s.NoteStyleSummary,
	}}
	for _, p := range s.Pages {
		out = append(out, Note{
			Title:   fmt.Sprintf("Page %d", p.Page),
			Content: p.Summary,
		})
	}
	return out
}

// MockNotes is the built-in note set shown for subjects without an attached
// summary.
func MockNotes() []Note {
	return []Note{
		{
			Title:   "Founding of Joseon",
			Content: "In 1392 Yi Seong-gye toppled Goryeo after turning his army back at Wihwa Island and founded the Joseon dynasty.",
			KeyPoints: []string{
				"Wihwa Island retreat (1388)",
				"King Taejo enthroned (1392)",
				"Capital moved to Hanyang (1394)",
			},
		},
		{
			Title:   "King Sejong's achievements",
			Content: "Sejong, the fourth Joseon king, created Hunminjeongeum and advanced science and technology.",
			KeyPoints: []string{
				"Hunminjeongeum created (1443)",
				"Rain gauge and sundial invented",
				"Four forts and six posts established",
			},
		},
		{
			Title:   "The Imjin War",
			Content: "A seven-year war that began with Japan's invasion in 1592.",
			KeyPoints: []string{
				"Admiral Yi Sun-sin's campaigns",
				"Battles of Hansan Island and Myeongnyang",
				"Volunteer militia resistance",
			},
		},
	}
}
