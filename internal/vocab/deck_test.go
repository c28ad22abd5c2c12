package vocab

import "testing"

func twoCards() []Card {
	return []Card{
		{Term: "a", Definition: "first"},
		{Term: "b", Definition: "second"},
	}
}

func TestDeck_FlipAndNavigate(t *testing.T) {
	d := NewDeck(twoCards())

	if d.Current().Term != "a" || d.Flipped() {
		t.Fatal("deck should start on the first card, front up")
	}

	d.Flip()
	if !d.Flipped() {
		t.Error("expected back side after flip")
	}

	d.Next()
	if d.Current().Term != "b" {
		t.Errorf("Current = %q, want b", d.Current().Term)
	}
	if d.Flipped() {
		t.Error("navigation must reset the flip")
	}
}

func TestDeck_Wraparound(t *testing.T) {
	d := NewDeck(twoCards())

	d.Next()
	d.Next()
	if d.Index() != 0 {
		t.Errorf("Index = %d after wrapping forward, want 0", d.Index())
	}

	d.Prev()
	if d.Index() != 1 {
		t.Errorf("Index = %d after wrapping backward, want 1", d.Index())
	}
}

func TestDeck_Restart(t *testing.T) {
	d := NewDeck(twoCards())
	d.Next()
	d.Flip()
	d.Restart()

	if d.Index() != 0 || d.Flipped() {
		t.Error("restart should return to the first card, front up")
	}
}

func TestDeck_Empty(t *testing.T) {
	d := NewDeck(nil)
	if d.Current() != nil {
		t.Error("Current should be nil for an empty deck")
	}
	d.Next() // must not panic
	d.Prev()
	d.Flip()
}

func TestDefaultCards(t *testing.T) {
	cards := DefaultCards()
	if len(cards) != 5 {
		t.Fatalf("len = %d, want 5", len(cards))
	}
	for i, c := range cards {
		if c.Term == "" || c.Definition == "" {
			t.Errorf("card %d is incomplete", i)
		}
	}
}
