package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Ace, Spades), "A♠"},
		{NewCard(King, Hearts), "K♥"},
		{NewCard(Ten, Diamonds), "T♦"},
		{NewCard(Two, Clubs), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestCardEquality(t *testing.T) {
	a := NewCard(Ace, Spades)
	b := NewCard(Ace, Spades)
	c := NewCard(Ace, Hearts)

	if a != b {
		t.Error("identical cards should compare equal")
	}
	if a == c {
		t.Error("same rank, different suit should not compare equal")
	}

	// Cards are used as map keys for exclusion sets
	set := map[Card]bool{a: true}
	if !set[b] {
		t.Error("equal card should hit the same map key")
	}
	if set[c] {
		t.Error("different suit should miss the map key")
	}
}

func TestCardLess(t *testing.T) {
	if !NewCard(Two, Spades).Less(NewCard(Three, Hearts)) {
		t.Error("2 should order below 3")
	}
	if NewCard(Ace, Clubs).Less(NewCard(King, Clubs)) {
		t.Error("ace is high")
	}
	// Suits carry no ordering
	if NewCard(Five, Spades).Less(NewCard(Five, Hearts)) {
		t.Error("equal ranks should not order")
	}
}

func TestSuitIsRed(t *testing.T) {
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("hearts and diamonds are red")
	}
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("spades and clubs are black")
	}
}
