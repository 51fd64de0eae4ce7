package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInsufficientCards is returned when a draw asks for more cards than
// remain. In the search core this indicates an exclusion set that is out of
// sync with the deal stage, so callers treat it as an internal-consistency
// failure rather than retrying.
var ErrInsufficientCards = errors.New("not enough cards in deck")

// Deck is a shuffled 52-card deck minus an exclusion set. It never contains
// duplicate cards or cards from its exclusion set.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a new shuffled 52-card deck with explicit RNG.
func New(rng *rand.Rand) *Deck {
	return NewExcluding(rng, nil)
}

// NewExcluding creates a shuffled deck containing the 52 cards minus the
// excluded set.
func NewExcluding(rng *rand.Rand, excluded map[Card]bool) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52-len(excluded)),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			if !excluded[card] {
				d.cards = append(d.cards, card)
			}
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the first n cards from the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d with %d remaining: %w", n, len(d.cards), ErrInsufficientCards)
	}
	cards := d.cards[:n]
	d.cards = d.cards[n:]
	return cards, nil
}

// Peek returns the first n cards without removing them.
func (d *Deck) Peek(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("peek %d with %d remaining: %w", n, len(d.cards), ErrInsufficientCards)
	}
	return d.cards[:n], nil
}

// Remaining returns the cards still in the deck, in draw order. The slice
// aliases the deck's storage; callers must not mutate it.
func (d *Deck) Remaining() []Card {
	return d.cards
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}
