package game

// Phase is the outcome classification of a session.
type Phase int

const (
	Continue Phase = iota
	WinPlayerOne
	WinPlayerTwo
	Draw
	// Start is transient: it is resolved into a fresh Continue within
	// the same step.
	Start
)

// Turn says which player may place the next mark.
type Turn int

const (
	PlayerOneTurn Turn = iota
	PlayerTwoTurn
)

// Terminal reports whether the phase ends a round.
func (p Phase) Terminal() bool {
	return p == WinPlayerOne || p == WinPlayerTwo || p == Draw
}

func (p Phase) String() string {
	switch p {
	case Continue:
		return "continue"
	case WinPlayerOne:
		return "win_player_one"
	case WinPlayerTwo:
		return "win_player_two"
	case Draw:
		return "draw"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}

// Mark returns the cell value placed by the player holding the turn.
func (t Turn) Mark() Cell {
	if t == PlayerTwoTurn {
		return PlayerTwo
	}
	return PlayerOne
}

// Next returns the other turn.
func (t Turn) Next() Turn {
	if t == PlayerOneTurn {
		return PlayerTwoTurn
	}
	return PlayerOneTurn
}

func (t Turn) String() string {
	if t == PlayerTwoTurn {
		return "player_two"
	}
	return "player_one"
}
