// Package loop drives the interactive hangman session: it owns the
// read-guess-render cycle for each round and the play-again cycle
// across rounds. All reads come from an injected io.Reader so tests
// can script entire sessions.
package loop

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/rjhall/hangman/internal/config"
	"github.com/rjhall/hangman/internal/game"
	"github.com/rjhall/hangman/internal/session"
	"github.com/rjhall/hangman/internal/tui"
	"github.com/rjhall/hangman/internal/words"
)

// ExitReason indicates why the session loop stopped.
type ExitReason int

const (
	ExitReasonUnknown ExitReason = iota
	ExitReasonQuit               // player declined another round
	ExitReasonEOF                // input stream closed
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonQuit:
		return "quit"
	case ExitReasonEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a session.
type Result struct {
	Reason ExitReason
	Stats  session.Stats
}

// Options holds configuration for creating a Loop. This struct enables
// test-friendly construction with explicit dependencies.
type Options struct {
	In       io.Reader
	Terminal *tui.Terminal
	Config   *config.Config
	Logger   zerolog.Logger
	PickWord func() string // defaults to words.Random
}

// Loop manages one interactive session of consecutive rounds.
type Loop struct {
	scanner  *bufio.Scanner
	term     *tui.Terminal
	cfg      *config.Config
	logger   zerolog.Logger
	pickWord func() string
	sess     *session.Session

	gameView    *tui.GameView
	resultView  *tui.ResultView
	summaryView *tui.SummaryView
}

// New creates a Loop from the given options.
func New(opts Options) *Loop {
	if opts.PickWord == nil {
		opts.PickWord = words.Random
	}
	if opts.Config == nil {
		opts.Config = &config.Config{MaxAttempts: config.DefaultMaxAttempts}
	}
	return &Loop{
		scanner:     bufio.NewScanner(opts.In),
		term:        opts.Terminal,
		cfg:         opts.Config,
		logger:      opts.Logger,
		pickWord:    opts.PickWord,
		gameView:    &tui.GameView{},
		resultView:  &tui.ResultView{},
		summaryView: &tui.SummaryView{},
	}
}

// Run plays rounds until the player quits or input ends. Session stats
// are printed on the way out in either case.
func (l *Loop) Run() (*Result, error) {
	l.welcome()

	name, ok := l.readLine("enter your name: ")
	if !ok {
		return &Result{Reason: ExitReasonEOF}, nil
	}
	l.sess = session.New(name)
	l.term.Writef("good luck, %s!\n", l.sess.Player)

	reason := ExitReasonQuit
	for {
		won, ok := l.playRound()
		if !ok {
			reason = ExitReasonEOF
			break
		}
		if won {
			l.sess.Stats.RecordWin()
		} else {
			l.sess.Stats.RecordLoss()
		}

		again, ok := l.promptAgain()
		if !ok {
			reason = ExitReasonEOF
			break
		}
		if !again {
			break
		}
	}

	l.term.WriteLines(l.summaryView.Render(l.term, tui.SessionSummary{
		Player: l.sess.Player,
		Plays:  l.sess.Stats.Plays,
		Wins:   l.sess.Stats.Wins,
		Losses: l.sess.Stats.Losses,
	}))
	l.term.Writef("goodbye, %s!\n", l.sess.Player)

	l.logger.Debug().
		Stringer("reason", reason).
		Int("plays", l.sess.Stats.Plays).
		Int("wins", l.sess.Stats.Wins).
		Msg("session ended")

	return &Result{Reason: reason, Stats: l.sess.Stats}, nil
}

// playRound runs one round to its terminal state. It reports the
// outcome and whether input is still open; a round abandoned at EOF
// is not counted.
func (l *Loop) playRound() (won, ok bool) {
	word := l.pickWord()
	g := game.New(word, l.cfg.MaxAttempts)

	l.logger.Debug().
		Int("length", len(word)).
		Int("max_attempts", g.MaxAttempts()).
		Msg("round started")

	l.term.WriteLine("")
	l.term.Writef("the word has %d letters\n", utf8.RuneCountInString(word))
	l.renderTurn(g)

	for !g.Finished() {
		line, open := l.readLine("enter a letter: ")
		if !open {
			return false, false
		}

		if utf8.RuneCountInString(line) != 1 {
			l.term.WriteLine("please enter a single letter")
			continue
		}
		r, _ := utf8.DecodeRuneInString(line)

		hit, err := g.Guess(r)
		switch {
		case err != nil:
			// Repeats and non-letters reprompt without consuming an
			// attempt.
			l.term.WriteLine(reprompt(err))
			continue
		case hit:
			l.term.Writef("good guess, %q is in the word\n", r)
		default:
			l.term.Writef("sorry, %q is not in the word\n", r)
		}

		if g.Finished() {
			break
		}
		l.renderTurn(g)
	}

	l.term.WriteLines(l.resultView.Render(l.term, tui.Outcome{
		Won:          g.Won(),
		Word:         g.Word(),
		AttemptsLeft: g.AttemptsLeft(),
		MaxAttempts:  g.MaxAttempts(),
	}))

	l.logger.Debug().
		Stringer("status", g.Status()).
		Int("attempts_left", g.AttemptsLeft()).
		Msg("round finished")

	return g.Won(), true
}

// renderTurn prints the board for the current turn.
func (l *Loop) renderTurn(g *game.Game) {
	l.term.WriteLines(l.gameView.Render(l.term, tui.ViewState{
		Pattern:      g.Pattern(),
		Wrong:        g.Wrong(),
		AttemptsLeft: g.AttemptsLeft(),
		MaxAttempts:  g.MaxAttempts(),
	}))
}

// promptAgain asks whether to start another round, reprompting until
// it gets a yes or no.
func (l *Loop) promptAgain() (again, ok bool) {
	for {
		line, open := l.readLine("play again? [y/n] ")
		if !open {
			return false, false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		default:
			l.term.WriteLine("please answer y or n")
		}
	}
}

// readLine prints a prompt and reads one trimmed line. ok is false
// once input is exhausted.
func (l *Loop) readLine(prompt string) (line string, ok bool) {
	l.term.Write(prompt)
	if !l.scanner.Scan() {
		l.term.WriteLine("")
		return "", false
	}
	return strings.TrimSpace(l.scanner.Text()), true
}

// welcome prints the session banner.
func (l *Loop) welcome() {
	banner := strings.Repeat("=", 40)
	l.term.WriteLine(banner)
	l.term.WriteLine("  welcome to hangman")
	l.term.WriteLine("  guess the word letter by letter")
	l.term.Writef("  you have %d wrong guesses before you lose\n", l.cfg.MaxAttempts)
	l.term.WriteLine(banner)
}

// reprompt maps an engine rejection to the message shown the player.
func reprompt(err error) string {
	switch {
	case errors.Is(err, game.ErrAlreadyGuessed):
		return "you already guessed that letter"
	case errors.Is(err, game.ErrNotALetter):
		return "please enter a letter"
	default:
		return err.Error()
	}
}
