package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainTerminal() *Terminal {
	return NewTerminal(io.Discard, true)
}

func TestGameViewRender(t *testing.T) {
	t.Parallel()

	t.Run("fresh game", func(t *testing.T) {
		t.Parallel()
		view := &GameView{}
		got := view.Render(plainTerminal(), ViewState{
			Pattern:      "_ _ _",
			AttemptsLeft: 6,
			MaxAttempts:  6,
		})

		joined := strings.Join(got, "\n")
		assert.Contains(t, joined, "word:  _ _ _")
		assert.Contains(t, joined, "6/6 attempts left")
		assert.NotContains(t, joined, "wrong:")
	})

	t.Run("wrong guesses listed in order", func(t *testing.T) {
		t.Parallel()
		view := &GameView{}
		got := view.Render(plainTerminal(), ViewState{
			Pattern:      "c _ _",
			Wrong:        []rune{'x', 'y'},
			AttemptsLeft: 4,
			MaxAttempts:  6,
		})

		joined := strings.Join(got, "\n")
		assert.Contains(t, joined, "wrong: x, y")
		assert.Contains(t, joined, "4/6 attempts left")
	})

	t.Run("gallows matches attempts used", func(t *testing.T) {
		t.Parallel()
		view := &GameView{}
		got := view.Render(plainTerminal(), ViewState{
			Pattern:      "_ _ _",
			Wrong:        []rune{'x', 'y'},
			AttemptsLeft: 4,
			MaxAttempts:  6,
		})

		want := strings.Split(Gallows(2, 6), "\n")
		require.GreaterOrEqual(t, len(got), len(want))
		assert.Equal(t, want, got[:len(want)])
	})

	t.Run("styling disabled emits no escape codes", func(t *testing.T) {
		t.Parallel()
		view := &GameView{}
		got := view.Render(plainTerminal(), ViewState{
			Pattern:      "c a t",
			Wrong:        []rune{'x'},
			AttemptsLeft: 1,
			MaxAttempts:  6,
		})
		assert.NotContains(t, strings.Join(got, "\n"), "\033[")
	})
}

func TestAttemptsColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		left, max int
		want      string
	}{
		{name: "plenty left", left: 6, max: 6, want: FgGreen},
		{name: "half gone", left: 3, max: 6, want: FgYellow},
		{name: "last attempt", left: 1, max: 6, want: FgRed},
		{name: "none left", left: 0, max: 6, want: FgRed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, attemptsColor(tt.left, tt.max))
		})
	}
}

func TestResultViewRender(t *testing.T) {
	t.Parallel()

	t.Run("win reveals the word", func(t *testing.T) {
		t.Parallel()
		view := &ResultView{}
		got := view.Render(plainTerminal(), Outcome{
			Won:          true,
			Word:         "cat",
			AttemptsLeft: 6,
			MaxAttempts:  6,
		})

		joined := strings.Join(got, "\n")
		assert.Contains(t, joined, "the word was: cat")
		assert.Contains(t, joined, "you won!")
	})

	t.Run("loss shows the complete figure", func(t *testing.T) {
		t.Parallel()
		view := &ResultView{}
		got := view.Render(plainTerminal(), Outcome{
			Won:          false,
			Word:         "cat",
			AttemptsLeft: 0,
			MaxAttempts:  6,
		})

		joined := strings.Join(got, "\n")
		assert.Contains(t, joined, "game over")
		assert.Contains(t, joined, `/ \`)
	})
}

func TestSummaryViewRender(t *testing.T) {
	t.Parallel()

	view := &SummaryView{}
	got := view.Render(plainTerminal(), SessionSummary{
		Player: "alice",
		Plays:  3,
		Wins:   2,
		Losses: 1,
	})

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "session stats for alice:")
	assert.Contains(t, joined, "played: 3")
	assert.Contains(t, joined, "won:    2")
	assert.Contains(t, joined, "lost:   1")
}

func TestTerminalStyle(t *testing.T) {
	t.Parallel()

	t.Run("applies codes when color is enabled", func(t *testing.T) {
		t.Parallel()
		term := NewTerminal(io.Discard, false)
		assert.Equal(t, FgRed+Bold+"x"+Reset, term.Style("x", FgRed, Bold))
	})

	t.Run("no-op when color is disabled", func(t *testing.T) {
		t.Parallel()
		term := NewTerminal(io.Discard, true)
		assert.Equal(t, "x", term.Style("x", FgRed, Bold))
	})

	t.Run("no-op without codes", func(t *testing.T) {
		t.Parallel()
		term := NewTerminal(io.Discard, false)
		assert.Equal(t, "x", term.Style("x"))
	})
}

func TestTerminalWrite(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	term := NewTerminal(&sb, true)
	term.Write("a")
	term.WriteLine("b")
	term.Writef("%d", 7)
	term.WriteLines([]string{"x", "y"})

	assert.Equal(t, "ab\n7x\ny\n", sb.String())
}
