// Package vocab implements the flashcard deck shown in the vocabulary view.
package vocab

// Card is a single flashcard: a term on the front, the definition (plus an
// optional example) on the back.
type Card struct {
	Term       string
	Definition string
	Example    string
}

// Deck is a cursor over a fixed card set with a flip state. Next and Prev
// wrap around and always land on the front side.
type Deck struct {
	cards   []Card
	index   int
	flipped bool
}

// NewDeck creates a deck positioned on the first card, front side up.
func NewDeck(cards []Card) *Deck {
	return &Deck{cards: cards}
}

// Current returns the card under the cursor, or nil for an empty deck.
func (d *Deck) Current() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	return &d.cards[d.index]
}

// Index returns the zero-based cursor position.
func (d *Deck) Index() int { return d.index }

// Total returns the number of cards.
func (d *Deck) Total() int { return len(d.cards) }

// Flipped reports whether the back side is showing.
func (d *Deck) Flipped() bool { return d.flipped }

// Flip turns the current card over.
func (d *Deck) Flip() { d.flipped = !d.flipped }

// Next advances to the following card, wrapping to the first after the
// last, and resets the flip.
func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.flipped = false
	d.index = (d.index + 1) % len(d.cards)
}

// Prev moves to the preceding card, wrapping to the last before the first,
// and resets the flip.
func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.flipped = false
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
}

// Restart returns to the first card, front side up.
func (d *Deck) Restart() {
	d.index = 0
	d.flipped = false
}

// DefaultCards is the built-in review deck.
func DefaultCards() []Card {
	return []Card{
		{
			Term:       "Hunminjeongeum",
			Definition: "The original name of Hangul, created by King Sejong in 1443",
			Example:    "It means \"the correct sounds for instructing the people\".",
		},
		{
			Term:       "Gwageo",
			Definition: "The civil service examination system for selecting officials",
			Example:    "Held throughout the Goryeo and Joseon dynasties.",
		},
		{
			Term:       "Uibyeong",
			Definition: "Volunteer militias raised when the country was in crisis",
			Example:    "They fought during the Imjin War.",
		},
		{
			Term:       "Battle of Hansan Island",
			Definition: "Admiral Yi Sun-sin's decisive 1592 naval victory",
			Example:    "Fought with the crane wing formation.",
		},
		{
			Term:       "Gyeongguk daejeon",
			Definition: "Joseon's national code of law, completed under King Seongjong",
			Example:    "The foundational statute book of the dynasty.",
		},
	}
}
