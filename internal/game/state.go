// Package game models the evolving knowledge of a single simulated heads-up
// hold'em deal: the hero's hole cards, the opponent's (once assigned), the
// community cards, and a stage marker tracking exactly which fields are
// populated.
package game

import (
	"errors"
	"fmt"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/evaluator"
)

// Stage marks which fields of a GameState are populated. Community cards are
// only ever populated in the order flop, turn, river.
type Stage int

const (
	Preflop Stage = iota
	OpponentDealt
	FlopDealt
	TurnDealt
	Showdown
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case OpponentDealt:
		return "opponent-dealt"
	case FlopDealt:
		return "flop-dealt"
	case TurnDealt:
		return "turn-dealt"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// Contract-violation errors. These indicate stage bookkeeping bugs, not
// runtime conditions, and are never retried.
var (
	ErrWrongStage    = errors.New("operation not valid in current stage")
	ErrNotShowdown   = errors.New("cannot evaluate winner before showdown")
	ErrNoOpponent    = errors.New("opponent hole cards not assigned")
	ErrDuplicateCard = errors.New("card already known to this deal")
)

// GameState is a value type: Clone produces a fully independent instance, so
// search-tree nodes never alias each other's card collections.
type GameState struct {
	playerHole   []deck.Card
	opponentHole []deck.Card // nil until assigned
	flop         []deck.Card // nil or exactly 3
	turn         *deck.Card
	river        *deck.Card
	stage        Stage
	known        map[deck.Card]bool
}

// New creates the initial preflop state for the given hero hole cards.
func New(playerHole []deck.Card) (*GameState, error) {
	if len(playerHole) != 2 {
		return nil, fmt.Errorf("need exactly 2 hole cards, got %d", len(playerHole))
	}
	if playerHole[0] == playerHole[1] {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, playerHole[0])
	}

	s := &GameState{
		playerHole: append([]deck.Card(nil), playerHole...),
		stage:      Preflop,
		known:      make(map[deck.Card]bool, 9),
	}
	s.known[playerHole[0]] = true
	s.known[playerHole[1]] = true
	return s, nil
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		playerHole:   append([]deck.Card(nil), s.playerHole...),
		opponentHole: append([]deck.Card(nil), s.opponentHole...),
		flop:         append([]deck.Card(nil), s.flop...),
		stage:        s.stage,
		known:        make(map[deck.Card]bool, len(s.known)),
	}
	if s.turn != nil {
		turn := *s.turn
		c.turn = &turn
	}
	if s.river != nil {
		river := *s.river
		c.river = &river
	}
	for card := range s.known {
		c.known[card] = true
	}
	return c
}

// Stage returns the current stage marker.
func (s *GameState) Stage() Stage {
	return s.stage
}

// PlayerHole returns the hero's hole cards.
func (s *GameState) PlayerHole() []deck.Card {
	return append([]deck.Card(nil), s.playerHole...)
}

// OpponentHole returns the opponent's hole cards, or nil before assignment.
func (s *GameState) OpponentHole() []deck.Card {
	return append([]deck.Card(nil), s.opponentHole...)
}

// KnownCards returns a copy of the set of every currently-known card: the
// union of all populated fields. Used as a deck exclusion set.
func (s *GameState) KnownCards() map[deck.Card]bool {
	known := make(map[deck.Card]bool, len(s.known))
	for card := range s.known {
		known[card] = true
	}
	return known
}

// CommunityCards returns the populated community cards in flop, turn, river
// order. Length is 0, 3, 4 or 5.
func (s *GameState) CommunityCards() []deck.Card {
	community := make([]deck.Card, 0, 5)
	community = append(community, s.flop...)
	if s.turn != nil {
		community = append(community, *s.turn)
	}
	if s.river != nil {
		community = append(community, *s.river)
	}
	return community
}

// SetOpponentHole assigns the opponent's hole cards and advances the stage.
func (s *GameState) SetOpponentHole(cards []deck.Card) error {
	if s.stage != Preflop {
		return fmt.Errorf("%w: opponent cards in stage %s", ErrWrongStage, s.stage)
	}
	if len(cards) != 2 {
		return fmt.Errorf("opponent needs exactly 2 hole cards, got %d", len(cards))
	}
	if err := s.learn(cards); err != nil {
		return err
	}
	s.opponentHole = append([]deck.Card(nil), cards...)
	s.stage = OpponentDealt
	return nil
}

// SetFlop assigns the three flop cards as a unit and advances the stage.
func (s *GameState) SetFlop(cards []deck.Card) error {
	if s.stage != OpponentDealt {
		return fmt.Errorf("%w: flop in stage %s", ErrWrongStage, s.stage)
	}
	if len(cards) != 3 {
		return fmt.Errorf("flop needs exactly 3 cards, got %d", len(cards))
	}
	if err := s.learn(cards); err != nil {
		return err
	}
	s.flop = append([]deck.Card(nil), cards...)
	s.stage = FlopDealt
	return nil
}

// SetTurn assigns the turn card and advances the stage.
func (s *GameState) SetTurn(card deck.Card) error {
	if s.stage != FlopDealt {
		return fmt.Errorf("%w: turn in stage %s", ErrWrongStage, s.stage)
	}
	if err := s.learn([]deck.Card{card}); err != nil {
		return err
	}
	s.turn = &card
	s.stage = TurnDealt
	return nil
}

// SetRiver assigns the river card. The deal is now at showdown.
func (s *GameState) SetRiver(card deck.Card) error {
	if s.stage != TurnDealt {
		return fmt.Errorf("%w: river in stage %s", ErrWrongStage, s.stage)
	}
	if err := s.learn([]deck.Card{card}); err != nil {
		return err
	}
	s.river = &card
	s.stage = Showdown
	return nil
}

// AdvanceToShowdown draws exactly as many cards as needed to reach five
// community cards, respecting the flop, turn, river ordering, and marks the
// deal as showdown. The deck must already exclude every known card.
func (s *GameState) AdvanceToShowdown(d *deck.Deck) error {
	missing := 5 - len(s.CommunityCards())
	if missing > 0 {
		drawn, err := d.Draw(missing)
		if err != nil {
			return err
		}
		if err := s.learn(drawn); err != nil {
			return err
		}
		if s.flop == nil {
			s.flop = append([]deck.Card(nil), drawn[:3]...)
			drawn = drawn[3:]
		}
		if s.turn == nil {
			turn := drawn[0]
			s.turn = &turn
			drawn = drawn[1:]
		}
		if s.river == nil {
			river := drawn[0]
			s.river = &river
		}
	}
	s.stage = Showdown
	return nil
}

// EvaluateWinner compares both players' best five-of-seven hands at
// showdown. Returns +1 if the hero wins, -1 if the opponent wins, 0 on a
// tie.
func (s *GameState) EvaluateWinner() (int, error) {
	if s.stage != Showdown {
		return 0, fmt.Errorf("%w: stage is %s", ErrNotShowdown, s.stage)
	}
	community := s.CommunityCards()
	if len(community) != 5 {
		return 0, fmt.Errorf("showdown needs exactly 5 community cards, got %d", len(community))
	}
	if s.opponentHole == nil {
		return 0, ErrNoOpponent
	}

	playerHand, err := evaluator.BestHand(s.playerHole, community)
	if err != nil {
		return 0, err
	}
	opponentHand, err := evaluator.BestHand(s.opponentHole, community)
	if err != nil {
		return 0, err
	}

	return evaluator.Compare(playerHand, opponentHand), nil
}

// learn adds cards to the known set, rejecting any card already known.
func (s *GameState) learn(cards []deck.Card) error {
	for _, card := range cards {
		if s.known[card] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
	}
	for _, card := range cards {
		s.known[card] = true
	}
	return nil
}
