package tui

import (
	"fmt"
	"strings"
)

// ViewState holds the data needed to render one game turn.
type ViewState struct {
	Pattern      string
	Wrong        []rune
	AttemptsLeft int
	MaxAttempts  int
}

// GameView renders the board for the current turn.
type GameView struct{}

// Render renders the turn view to a slice of lines: gallows drawing,
// revealed pattern, wrong guesses, and remaining attempts.
func (v *GameView) Render(t *Terminal, state ViewState) []string {
	used := state.MaxAttempts - state.AttemptsLeft

	lines := strings.Split(Gallows(used, state.MaxAttempts), "\n")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("word:  %s", t.Style(state.Pattern, Bold)))

	if len(state.Wrong) > 0 {
		parts := make([]string, len(state.Wrong))
		for i, r := range state.Wrong {
			parts[i] = string(r)
		}
		lines = append(lines, fmt.Sprintf("wrong: %s", t.Style(strings.Join(parts, ", "), FgRed)))
	}

	attempts := fmt.Sprintf("%d/%d attempts left", state.AttemptsLeft, state.MaxAttempts)
	lines = append(lines, t.Style(attempts, attemptsColor(state.AttemptsLeft, state.MaxAttempts)))

	return lines
}

// attemptsColor picks a color for the remaining-attempts indicator.
func attemptsColor(left, max int) string {
	switch {
	case left <= 1:
		return FgRed
	case left*2 <= max:
		return FgYellow
	default:
		return FgGreen
	}
}

// Outcome describes a finished game for rendering.
type Outcome struct {
	Won          bool
	Word         string
	AttemptsLeft int
	MaxAttempts  int
}

// ResultView renders the end-of-game reveal.
type ResultView struct{}

// Render renders the final gallows, the revealed word, and the
// win/lose message.
func (v *ResultView) Render(t *Terminal, o Outcome) []string {
	used := o.MaxAttempts - o.AttemptsLeft

	lines := strings.Split(Gallows(used, o.MaxAttempts), "\n")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("the word was: %s", t.Style(o.Word, Bold)))

	if o.Won {
		lines = append(lines, t.Style("you won!", FgBrightGreen, Bold))
	} else {
		lines = append(lines, t.Style("game over, better luck next time", FgBrightRed))
	}
	return lines
}

// SessionSummary holds the totals printed when the session ends.
type SessionSummary struct {
	Player string
	Plays  int
	Wins   int
	Losses int
}

// SummaryView renders session statistics on exit.
type SummaryView struct{}

// Render renders the session totals.
func (v *SummaryView) Render(t *Terminal, s SessionSummary) []string {
	return []string{
		"",
		fmt.Sprintf("session stats for %s:", s.Player),
		fmt.Sprintf("  played: %d", s.Plays),
		fmt.Sprintf("  won:    %s", t.Style(fmt.Sprintf("%d", s.Wins), FgGreen)),
		fmt.Sprintf("  lost:   %s", t.Style(fmt.Sprintf("%d", s.Losses), FgRed)),
	}
}
