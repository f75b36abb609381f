package player

import (
	"ctchen222/titac/internal/game"

	"github.com/google/uuid"
)

// Kind tells who drives a seat.
type Kind string

const (
	KindHuman    Kind = "human"
	KindComputer Kind = "computer"
)

// Player represents one of the two seats at the board.
type Player struct {
	ID   string
	Mark game.Cell
	Kind Kind
}

// NewHuman creates the seat driven by mouse input.
func NewHuman(mark game.Cell) *Player {
	return &Player{
		ID:   "human-" + uuid.New().String()[:8],
		Mark: mark,
		Kind: KindHuman,
	}
}

// NewComputer creates the seat driven by the opponent.
func NewComputer(mark game.Cell) *Player {
	return &Player{
		ID:   "bot-" + uuid.New().String()[:8],
		Mark: mark,
		Kind: KindComputer,
	}
}

// IsBot reports whether the seat is played by the computer.
func (p *Player) IsBot() bool {
	return p.Kind == KindComputer
}
