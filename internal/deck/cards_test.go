package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHoleCards(t *testing.T) {
	t.Run("AsKh", func(t *testing.T) {
		cards, err := ParseHoleCards("AsKh")
		require.NoError(t, err)
		assert.Equal(t, []Card{{Rank: Ace, Suit: Spades}, {Rank: King, Suit: Hearts}}, cards)
	})

	t.Run("TcTd", func(t *testing.T) {
		cards, err := ParseHoleCards("TcTd")
		require.NoError(t, err)
		assert.Equal(t, []Card{{Rank: Ten, Suit: Clubs}, {Rank: Ten, Suit: Diamonds}}, cards)
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower, err := ParseHoleCards("askh")
		require.NoError(t, err)
		upper, err := ParseHoleCards("AsKh")
		require.NoError(t, err)
		assert.Equal(t, upper, lower)
	})

	t.Run("unknown rank names character", func(t *testing.T) {
		_, err := ParseHoleCards("XsKh")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'X'")
	})

	t.Run("unknown suit names character", func(t *testing.T) {
		_, err := ParseHoleCards("AxKh")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'x'")
	})

	t.Run("wrong length", func(t *testing.T) {
		for _, input := range []string{"", "Ah", "AsK", "AsKhQd"} {
			_, err := ParseHoleCards(input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("duplicate card", func(t *testing.T) {
		_, err := ParseHoleCards("AsAs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AsKsQsJsTs")
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	for _, card := range cards {
		if card.Suit != Spades {
			t.Errorf("expected spades, got %s", card)
		}
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("odd-length string should fail")
	}
	if _, err := ParseCards("1sKh"); err == nil || !strings.Contains(err.Error(), "'1'") {
		t.Errorf("expected error naming '1', got %v", err)
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid input")
		}
	}()
	MustParseCards("zz")
}
