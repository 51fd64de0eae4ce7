// Package evaluator ranks five-card poker hands into a category plus an
// ordered tiebreak vector, and picks the best five-card hand out of seven.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-mcts/internal/deck"
)

// Category enumerates the poker hand categories ordered from weakest to
// strongest. The zero value is invalid so an unset EvaluatedHand compares
// below every real hand.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// EvaluatedHand is the result of ranking a five-card hand. Tiebreaks are
// compared lexicographically, and only when categories are equal.
type EvaluatedHand struct {
	Category  Category
	Tiebreaks []deck.Rank
}

// String returns the category name, e.g. "Full House".
func (h EvaluatedHand) String() string {
	return h.Category.String()
}

// Evaluate ranks exactly five cards into a category and tiebreak vector.
// Tiebreaks per category:
//
//	straight / straight flush  -> [high card] (5 for the wheel)
//	four of a kind             -> [quad rank, kicker]
//	full house                 -> [triple rank, pair rank]
//	flush / high card          -> all five ranks descending
//	three of a kind            -> [triple rank, kickers descending]
//	two pair                   -> [high pair, low pair, kicker]
//	pair                       -> [pair rank, kickers descending]
//	royal flush                -> none
func Evaluate(cards []deck.Card) (EvaluatedHand, error) {
	if len(cards) != 5 {
		return EvaluatedHand{}, fmt.Errorf("hand must contain exactly 5 cards, got %d", len(cards))
	}

	ranks := make([]deck.Rank, 5)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight, straightHigh := straightHigh(ranks)

	counts := rankCounts(ranks)

	switch {
	case isStraight && isFlush:
		if ranks[0] == deck.Ace && ranks[1] == deck.King {
			return EvaluatedHand{Category: RoyalFlush}, nil
		}
		return EvaluatedHand{Category: StraightFlush, Tiebreaks: []deck.Rank{straightHigh}}, nil

	case counts.shape(4, 1):
		return EvaluatedHand{
			Category:  FourOfAKind,
			Tiebreaks: append(counts.ofCount(4), counts.ofCount(1)...),
		}, nil

	case counts.shape(3, 2):
		return EvaluatedHand{
			Category:  FullHouse,
			Tiebreaks: append(counts.ofCount(3), counts.ofCount(2)...),
		}, nil

	case isFlush:
		return EvaluatedHand{Category: Flush, Tiebreaks: ranks}, nil

	case isStraight:
		return EvaluatedHand{Category: Straight, Tiebreaks: []deck.Rank{straightHigh}}, nil

	case counts.shape(3, 1, 1):
		return EvaluatedHand{
			Category:  ThreeOfAKind,
			Tiebreaks: append(counts.ofCount(3), counts.ofCount(1)...),
		}, nil

	case counts.shape(2, 2, 1):
		return EvaluatedHand{
			Category:  TwoPair,
			Tiebreaks: append(counts.ofCount(2), counts.ofCount(1)...),
		}, nil

	case counts.shape(2, 1, 1, 1):
		return EvaluatedHand{
			Category:  Pair,
			Tiebreaks: append(counts.ofCount(2), counts.ofCount(1)...),
		}, nil

	default:
		return EvaluatedHand{Category: HighCard, Tiebreaks: ranks}, nil
	}
}

// BestHand finds the best five-card hand from 2 hole cards plus 5 community
// cards by evaluating all 21 five-card subsets.
func BestHand(hole, community []deck.Card) (EvaluatedHand, error) {
	if len(hole)+len(community) != 7 {
		return EvaluatedHand{}, fmt.Errorf("best hand needs exactly 7 cards (2 hole + 5 community), got %d",
			len(hole)+len(community))
	}

	all := make([]deck.Card, 0, 7)
	all = append(all, hole...)
	all = append(all, community...)

	var best EvaluatedHand
	subset := make([]deck.Card, 0, 5)

	// Choosing 5 of 7 is dropping 2: iterate over the dropped pair.
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			subset = subset[:0]
			for k, c := range all {
				if k != i && k != j {
					subset = append(subset, c)
				}
			}
			hand, err := Evaluate(subset)
			if err != nil {
				return EvaluatedHand{}, err
			}
			if Compare(hand, best) > 0 {
				best = hand
			}
		}
	}

	return best, nil
}

// Compare orders two evaluated hands. Returns +1 if a wins, -1 if b wins and
// 0 on an exact tie. Categories are compared first; equal categories fall
// back to lexicographic tiebreak comparison.
func Compare(a, b EvaluatedHand) int {
	switch {
	case a.Category > b.Category:
		return 1
	case a.Category < b.Category:
		return -1
	}

	for i := 0; i < len(a.Tiebreaks) && i < len(b.Tiebreaks); i++ {
		switch {
		case a.Tiebreaks[i] > b.Tiebreaks[i]:
			return 1
		case a.Tiebreaks[i] < b.Tiebreaks[i]:
			return -1
		}
	}
	return 0
}

// straightHigh reports whether the descending ranks form a straight and the
// rank of its high card. The wheel A-5-4-3-2 counts as a 5-high straight.
func straightHigh(ranks []deck.Rank) (bool, deck.Rank) {
	if ranks[0] == deck.Ace && ranks[1] == deck.Five &&
		ranks[2] == deck.Four && ranks[3] == deck.Three && ranks[4] == deck.Two {
		return true, deck.Five
	}
	for i := 0; i < 4; i++ {
		if ranks[i]-ranks[i+1] != 1 {
			return false, 0
		}
	}
	return true, ranks[0]
}

// groupedRanks buckets the hand's ranks by multiplicity.
type groupedRanks struct {
	counts map[deck.Rank]int
	sizes  []int // multiplicities in descending order, e.g. [3 2] for a full house
}

func rankCounts(ranks []deck.Rank) groupedRanks {
	counts := make(map[deck.Rank]int, 5)
	for _, r := range ranks {
		counts[r]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return groupedRanks{counts: counts, sizes: sizes}
}

// shape reports whether the multiplicity profile matches exactly, e.g.
// shape(2, 2, 1) for two pair.
func (g groupedRanks) shape(want ...int) bool {
	if len(g.sizes) != len(want) {
		return false
	}
	for i, n := range want {
		if g.sizes[i] != n {
			return false
		}
	}
	return true
}

// ofCount returns the ranks appearing exactly n times, highest first.
func (g groupedRanks) ofCount(n int) []deck.Rank {
	var out []deck.Rank
	for r, c := range g.counts {
		if c == n {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
