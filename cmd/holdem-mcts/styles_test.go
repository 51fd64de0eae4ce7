package main

import (
	"strings"
	"testing"

	"github.com/lox/holdem-mcts/internal/deck"
)

func TestStrengthVerdict(t *testing.T) {
	tests := []struct {
		equity  float64
		verdict string
	}{
		{0.853, "Very Strong"},
		{0.71, "Very Strong"},
		{0.65, "Strong"},
		{0.55, "Above Average"},
		{0.45, "Below Average"},
		{0.35, "Weak"},
		{0.282, "Weak"},
	}

	for _, tt := range tests {
		if got := strengthVerdict(tt.equity); got != tt.verdict {
			t.Errorf("strengthVerdict(%v) = %q, want %q", tt.equity, got, tt.verdict)
		}
	}
}

func TestFormatCards(t *testing.T) {
	out := formatCards(deck.MustParseCards("AhKs"))

	// Styling may be stripped when not attached to a TTY, but the card
	// glyphs always survive.
	if !strings.Contains(out, "A♥") || !strings.Contains(out, "K♠") {
		t.Errorf("formatted cards missing glyphs: %q", out)
	}
}
