package room

import (
	"ctchen222/titac/internal/game"
)

// State is what the presentation layer needs to draw one frame.
type State struct {
	Board       game.Board
	Turn        game.Turn
	Phase       game.Phase
	WinningLine game.Line
	HasWinner   bool
	Thinking    bool
	Round       int
}

// Snapshot copies the current state of the room.
func (r *Room) Snapshot() State {
	s := State{
		Board:    r.session.Board,
		Turn:     r.session.Turn,
		Phase:    r.session.Phase,
		Thinking: r.thinker.Thinking(),
		Round:    r.round,
	}

	if s.Phase == game.WinPlayerOne || s.Phase == game.WinPlayerTwo {
		s.WinningLine, s.HasWinner = r.session.Board.WinningLine()
	}

	return s
}
