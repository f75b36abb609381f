package room

import (
	"ctchen222/titac/internal/game"
)

// Phase returns the current phase of the session.
func (r *Room) Phase() game.Phase {
	return r.session.Phase
}

// IsFull reports whether every cell of the board is taken.
func (r *Room) IsFull() bool {
	return r.session.Board.IsFull()
}
