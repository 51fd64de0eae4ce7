package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-mcts/internal/analysis"
	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/mcts"
)

// InteractiveCmd runs a prompt loop: enter hole cards, choose an iteration
// count, see the estimate next to the ground truth.
type InteractiveCmd struct {
	Seed        int64 `help:"Random seed for reproducible results (0 for time-based)"`
	MaxChildren int   `help:"Cap on children generated per expansion" default:"1000"`
}

func (c *InteractiveCmd) Run() error {
	model := newInteractiveModel(c.Seed, c.MaxChildren)
	_, err := tea.NewProgram(model).Run()
	return err
}

type interactivePhase int

const (
	phaseEnterHand interactivePhase = iota
	phaseEnterIterations
	phaseComputing
	phaseShowResult
)

type estimateResult struct {
	hole       []deck.Card
	iterations int
	estimate   float64
	truth      float64
	elapsed    time.Duration
	err        error
}

type interactiveModel struct {
	phase   interactivePhase
	input   textinput.Model
	spin    spinner.Model
	seed    int64
	maxKids int

	hole    []deck.Card
	result  estimateResult
	errText string

	accent lipgloss.Style
	faint  lipgloss.Style
}

func newInteractiveModel(seed int64, maxChildren int) interactiveModel {
	input := textinput.New()
	input.Placeholder = "AsKh"
	input.CharLimit = 8
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	// Pick an accent readable on the detected background.
	accentColor := lipgloss.Color("63")
	if !termenv.HasDarkBackground() {
		accentColor = lipgloss.Color("25")
	}

	return interactiveModel{
		phase:   phaseEnterHand,
		input:   input,
		spin:    spin,
		seed:    seed,
		maxKids: maxChildren,
		accent:  lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
		if m.phase == phaseShowResult && msg.String() == "q" {
			return m, tea.Quit
		}

	case estimateResult:
		m.result = msg
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.phase = phaseEnterHand
			m.input.SetValue("")
			m.input.Placeholder = "AsKh"
			return m, nil
		}
		m.phase = phaseShowResult
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m interactiveModel) handleEnter() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseEnterHand:
		text := strings.TrimSpace(m.input.Value())
		if text == "quit" || text == "exit" || text == "q" {
			return m, tea.Quit
		}
		hole, err := deck.ParseHoleCards(text)
		if err != nil {
			m.errText = err.Error()
			m.input.SetValue("")
			return m, nil
		}
		m.errText = ""
		m.hole = hole
		m.phase = phaseEnterIterations
		m.input.SetValue("")
		m.input.Placeholder = "1000"
		return m, nil

	case phaseEnterIterations:
		iterations := 1000
		if text := strings.TrimSpace(m.input.Value()); text != "" {
			parsed, err := strconv.Atoi(text)
			if err != nil || parsed <= 0 {
				m.errText = "iterations must be a positive number"
				m.input.SetValue("")
				return m, nil
			}
			iterations = parsed
		}
		m.errText = ""
		m.phase = phaseComputing
		return m, tea.Batch(m.spin.Tick, runEstimate(m.hole, iterations, m.seed, m.maxKids))

	case phaseShowResult:
		m.phase = phaseEnterHand
		m.input.SetValue("")
		m.input.Placeholder = "AsKh"
		return m, nil
	}

	return m, nil
}

// runEstimate performs the search off the UI loop and delivers the result as
// a message.
func runEstimate(hole []deck.Card, iterations int, seed int64, maxChildren int) tea.Cmd {
	return func() tea.Msg {
		truth, err := analysis.GroundTruthOdds(hole)
		if err != nil {
			return estimateResult{err: err}
		}

		start := time.Now()
		estimate, err := mcts.EstimateWinProbability(hole, iterations, mcts.Config{
			Seed:        seed,
			MaxChildren: maxChildren,
		})
		if err != nil {
			return estimateResult{err: err}
		}

		return estimateResult{
			hole:       hole,
			iterations: iterations,
			estimate:   estimate,
			truth:      truth,
			elapsed:    time.Since(start),
		}
	}
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(m.accent.Render("Texas Hold'em MCTS Win Probability Estimator"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseEnterHand:
		b.WriteString("Enter your hole cards (e.g. AsKh, TcTd). Ranks 2-9TJQKA, suits shdc.\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.faint.Render("enter to confirm · esc to quit"))

	case phaseEnterIterations:
		b.WriteString(fmt.Sprintf("Analyzing %s\n\n", formatCards(m.hole)))
		b.WriteString("Number of MCTS iterations (default 1000):\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.faint.Render("enter to run · esc to quit"))

	case phaseComputing:
		b.WriteString(fmt.Sprintf("%s Running search for %s...", m.spin.View(), formatCards(m.hole)))

	case phaseShowResult:
		r := m.result
		diff := r.estimate - r.truth
		if diff < 0 {
			diff = -diff
		}
		b.WriteString(fmt.Sprintf("Hand: %s\n\n", formatCards(r.hole)))
		b.WriteString(fmt.Sprintf("Ground Truth Win Rate:  %s\n", truthStyle.Render(fmt.Sprintf("%.1f%%", r.truth*100))))
		b.WriteString(fmt.Sprintf("MCTS Estimate:          %s\n", winStyle.Render(fmt.Sprintf("%.1f%%", r.estimate*100))))
		b.WriteString(fmt.Sprintf("Difference:             %s\n", diffStyle.Render(fmt.Sprintf("%.1f%%", diff*100))))
		b.WriteString(fmt.Sprintf("Hand Strength:          %s\n\n", handStyle.Render(strengthVerdict(r.truth))))
		b.WriteString(m.faint.Render(fmt.Sprintf("%d iterations in %v · enter for another hand · q to quit",
			r.iterations, r.elapsed.Truncate(time.Millisecond))))
	}

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errText))
	}

	b.WriteString("\n")
	return b.String()
}
