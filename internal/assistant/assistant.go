// Package assistant produces AI study-plan suggestions for the calendar.
package assistant

import (
	"context"
	"math/rand"
	"time"
)

// Suggester proposes a one-line study plan for a given day.
type Suggester interface {
	Suggest(ctx context.Context, subjects []string, date time.Time) (string, error)
}

// cannedSuggestions is the fallback pool used when no LLM is configured.
var cannedSuggestions = []string{
	"Memorize 30 English words",
	"Review math problem sets",
	"Organize science notes",
	"Write a history chapter summary",
}

// CannedSuggester picks a random entry from a fixed pool.
type CannedSuggester struct {
	rng *rand.Rand
}

// NewCannedSuggester creates a CannedSuggester. A nil source falls back to
// the default shared source.
func NewCannedSuggester(seed int64) *CannedSuggester {
	return &CannedSuggester{rng: rand.New(rand.NewSource(seed))}
}

func (c *CannedSuggester) Suggest(_ context.Context, _ []string, _ time.Time) (string, error) {
	return cannedSuggestions[c.rng.Intn(len(cannedSuggestions))], nil
}
