// Package session tracks per-process play statistics. Nothing here is
// persisted; a session lives and dies with the process.
package session

// Stats accumulates game outcomes for one interactive session.
type Stats struct {
	Plays  int
	Wins   int
	Losses int
}

// RecordWin counts a won game.
func (s *Stats) RecordWin() {
	s.Plays++
	s.Wins++
}

// RecordLoss counts a lost game.
func (s *Stats) RecordLoss() {
	s.Plays++
	s.Losses++
}

// Session holds the identity and running totals of the current player.
type Session struct {
	Player string
	Stats  Stats
}

// New creates a session for the named player. An empty name becomes
// "player".
func New(player string) *Session {
	if player == "" {
		player = "player"
	}
	return &Session{Player: player}
}
