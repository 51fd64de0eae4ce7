package deck

import (
	"errors"
	"testing"

	"github.com/lox/holdem-mcts/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(1))
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}

	seen := make(map[Card]bool)
	cards, err := d.Draw(52)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for _, card := range cards {
		if seen[card] {
			t.Errorf("duplicate card drawn: %s", card)
		}
		seen[card] = true
	}
}

func TestNewExcluding(t *testing.T) {
	excluded := map[Card]bool{
		NewCard(Ace, Spades):  true,
		NewCard(Ace, Hearts):  true,
		NewCard(King, Spades): true,
	}

	d := NewExcluding(randutil.New(7), excluded)
	if d.Len() != 49 {
		t.Fatalf("expected 49 cards, got %d", d.Len())
	}

	cards, err := d.Draw(49)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for _, card := range cards {
		if excluded[card] {
			t.Errorf("excluded card %s present in deck", card)
		}
	}
}

func TestDrawInsufficientCards(t *testing.T) {
	d := New(randutil.New(1))
	if _, err := d.Draw(53); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards, got %v", err)
	}

	// The failed draw must not consume cards
	if d.Len() != 52 {
		t.Errorf("failed draw consumed cards, %d remain", d.Len())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	d := New(randutil.New(3))

	peeked, err := d.Peek(5)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if d.Len() != 52 {
		t.Errorf("peek consumed cards, %d remain", d.Len())
	}

	drawn, err := d.Draw(5)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for i := range peeked {
		if peeked[i] != drawn[i] {
			t.Errorf("peek[%d] = %s, draw[%d] = %s", i, peeked[i], i, drawn[i])
		}
	}
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	a := New(randutil.New(42))
	b := New(randutil.New(42))

	cardsA, _ := a.Draw(52)
	cardsB, _ := b.Draw(52)
	for i := range cardsA {
		if cardsA[i] != cardsB[i] {
			t.Fatalf("same seed produced different order at %d: %s vs %s", i, cardsA[i], cardsB[i])
		}
	}
}
