package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-mcts/internal/deck"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	redCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	truthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	diffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// formatCards renders cards with suit colors, e.g. a red A♥ next to a
// white K♠.
func formatCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		if card.IsRed() {
			parts = append(parts, redCardStyle.Render(card.String()))
		} else {
			parts = append(parts, blackCardStyle.Render(card.String()))
		}
	}
	return strings.Join(parts, " ")
}

// strengthVerdict buckets a ground-truth equity into the bands shown to
// interactive users.
func strengthVerdict(equity float64) string {
	switch {
	case equity > 0.7:
		return "Very Strong"
	case equity > 0.6:
		return "Strong"
	case equity > 0.5:
		return "Above Average"
	case equity > 0.4:
		return "Below Average"
	default:
		return "Weak"
	}
}
