// Package game implements the hangman guess state machine for a single
// round: one secret word, an accumulating set of guessed letters, and a
// bounded count of wrong guesses.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultMaxAttempts is the classic hangman allowance of wrong guesses.
const DefaultMaxAttempts = 6

var (
	// ErrGameFinished is returned when guessing on a won or lost game.
	ErrGameFinished = errors.New("game is finished")
	// ErrNotALetter is returned for non-alphabetic guesses.
	ErrNotALetter = errors.New("guess must be a letter")
	// ErrAlreadyGuessed is returned for repeated guesses. Repeats never
	// consume an attempt.
	ErrAlreadyGuessed = errors.New("letter already guessed")
)

// Status represents the round state.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game holds the state of one hangman round. It is not safe for
// concurrent use; a round is driven by a single loop.
type Game struct {
	word         string
	tried        []rune
	triedSet     map[rune]bool
	attemptsLeft int
	maxAttempts  int
	status       Status
}

// New starts a round for the given word. The word is normalized to
// lower case. A non-positive maxAttempts falls back to
// DefaultMaxAttempts.
func New(word string, maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		word:         strings.ToLower(word),
		triedSet:     make(map[rune]bool),
		attemptsLeft: maxAttempts,
		maxAttempts:  maxAttempts,
	}
}

// Guess processes one letter and reports whether it occurs in the
// secret word. Guesses are case-insensitive.
//
// Rejected guesses (finished game, non-letter, repeat) return a typed
// error and never consume an attempt. A wrong guess decrements the
// remaining attempts; at zero the round is lost. A correct guess that
// reveals the last hidden letter wins the round.
func (g *Game) Guess(r rune) (bool, error) {
	if g.status != StatusPlaying {
		return false, ErrGameFinished
	}
	if !unicode.IsLetter(r) {
		return false, fmt.Errorf("%w: %q", ErrNotALetter, r)
	}
	r = unicode.ToLower(r)
	if g.triedSet[r] {
		return false, fmt.Errorf("%w: %q", ErrAlreadyGuessed, r)
	}

	g.triedSet[r] = true
	g.tried = append(g.tried, r)

	if strings.ContainsRune(g.word, r) {
		if g.Revealed() {
			g.status = StatusWon
		}
		return true, nil
	}

	g.attemptsLeft--
	if g.attemptsLeft <= 0 {
		g.status = StatusLost
	}
	return false, nil
}

// Revealed reports whether every letter of the word has been guessed.
func (g *Game) Revealed() bool {
	for _, r := range g.word {
		if !g.triedSet[r] {
			return false
		}
	}
	return true
}

// Pattern returns the display form of the word: guessed letters shown,
// hidden letters masked, separated by spaces (e.g. "c a _").
func (g *Game) Pattern() string {
	var sb strings.Builder
	for i, r := range g.word {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if g.triedSet[r] {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Word returns the secret word.
func (g *Game) Word() string { return g.word }

// Tried returns all guessed letters in guess order.
func (g *Game) Tried() []rune {
	out := make([]rune, len(g.tried))
	copy(out, g.tried)
	return out
}

// Wrong returns the letters guessed that are not in the word, in guess
// order.
func (g *Game) Wrong() []rune {
	var out []rune
	for _, r := range g.tried {
		if !strings.ContainsRune(g.word, r) {
			out = append(out, r)
		}
	}
	return out
}

// AttemptsLeft returns the number of wrong guesses still allowed.
// It is never negative.
func (g *Game) AttemptsLeft() int { return g.attemptsLeft }

// AttemptsUsed returns the number of wrong guesses made so far.
func (g *Game) AttemptsUsed() int { return g.maxAttempts - g.attemptsLeft }

// MaxAttempts returns the wrong-guess allowance for this round.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Status returns the current round status.
func (g *Game) Status() Status { return g.status }

// Finished reports whether the round reached a terminal state.
func (g *Game) Finished() bool { return g.status != StatusPlaying }

// Won reports whether the round was won.
func (g *Game) Won() bool { return g.status == StatusWon }
