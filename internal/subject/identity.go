package subject

import (
	"math/rand"

	"github.com/google/uuid"
)

// Identity supplies IDs and display colors for new entities. Injected so
// tests can substitute a fixed sequence.
type Identity interface {
	NewID() string
	NewColor() string
}

// palette holds the card colors new subjects draw from. Collisions between
// subjects are cosmetically acceptable.
var palette = []string{
	"#3b82f6", // blue
	"#10b981", // emerald
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#f43f5e", // rose
	"#14b8a6", // teal
	"#f97316", // orange
}

type randomIdentity struct{}

// RandomIdentity returns the production Identity: UUIDs and a random
// palette color.
func RandomIdentity() Identity {
	return randomIdentity{}
}

func (randomIdentity) NewID() string {
	return uuid.New().String()
}

func (randomIdentity) NewColor() string {
	return palette[rand.Intn(len(palette))]
}
