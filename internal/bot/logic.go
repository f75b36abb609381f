package bot

import (
	"ctchen222/titac/internal/game"
	"math/rand/v2"
)

// Random is an opponent that plays a uniformly random empty cell.
// It implements the room.Opponent interface.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random opponent. A zero seed picks a random one.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextMove calls the package-level function to satisfy the interface.
func (r *Random) NextMove(board game.Board) (int, bool) {
	return RandomEmptyIndex(board, r.rng)
}

// RandomEmptyIndex picks one of the empty cells with equal probability.
// It reports false when the board is full.
func RandomEmptyIndex(board game.Board, rng *rand.Rand) (int, bool) {
	available := board.EmptyIndices()
	if len(available) == 0 {
		return -1, false // No moves left
	}

	return available[rng.IntN(len(available))], true
}
