package bot

import (
	"ctchen222/titac/internal/game"
	"math/rand/v2"
	"testing"
)

// moveIn is a helper function to check if a move is in a list of expected moves.
func moveIn(move int, list []int) bool {
	for _, item := range list {
		if item == move {
			return true
		}
	}
	return false
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRandomEmptyIndex(t *testing.T) {
	o, x, e := game.PlayerOne, game.PlayerTwo, game.Empty

	t.Run("Only one spot left", func(t *testing.T) {
		board := game.Board{
			o, x, o,
			x, o, x,
			o, e, x,
		}
		index, ok := RandomEmptyIndex(board, newTestRand())
		if !ok || index != 7 {
			t.Errorf("RandomEmptyIndex should pick the only available spot 7, but got (%d, %v)", index, ok)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		board := game.Board{
			o, x, o,
			o, x, x,
			x, o, o,
		}
		index, ok := RandomEmptyIndex(board, newTestRand())
		if ok || index != -1 {
			t.Errorf("RandomEmptyIndex on a full board got (%d, %v), want (-1, false)", index, ok)
		}
	})

	t.Run("Multiple spots left - check randomness and validity", func(t *testing.T) {
		board := game.Board{
			o, e, x,
			e, o, e,
			x, e, e,
		}
		available := board.EmptyIndices()
		seen := make(map[int]int)
		rng := newTestRand()

		for i := 0; i < 1000; i++ {
			index, ok := RandomEmptyIndex(board, rng)
			if !ok {
				t.Fatal("RandomEmptyIndex reported a full board")
			}
			if !moveIn(index, available) {
				t.Fatalf("RandomEmptyIndex picked occupied or invalid cell %d", index)
			}
			seen[index]++
		}

		if len(seen) != len(available) {
			t.Errorf("RandomEmptyIndex reached %d of %d empty cells over 1000 draws: %v", len(seen), len(available), seen)
		}
		for _, i := range available {
			// 1000/5 = 200 expected per cell.
			if seen[i] < 120 || seen[i] > 280 {
				t.Errorf("cell %d drawn %d times, expected about 200", i, seen[i])
			}
		}
	})
}

func TestRandom_NextMove(t *testing.T) {
	t.Run("Same seed plays the same game", func(t *testing.T) {
		a, b := NewRandom(42), NewRandom(42)
		var board game.Board
		for !board.IsFull() {
			ia, okA := a.NextMove(board)
			ib, okB := b.NextMove(board)
			if !okA || !okB || ia != ib {
				t.Fatalf("seeded opponents diverged: (%d, %v) vs (%d, %v)", ia, okA, ib, okB)
			}
			board[ia] = game.PlayerTwo
		}
	})

	t.Run("Fills the board without repeating a cell", func(t *testing.T) {
		r := NewRandom(0)
		var board game.Board
		for n := 0; n < game.CellCount; n++ {
			index, ok := r.NextMove(board)
			if !ok {
				t.Fatalf("NextMove reported a full board after %d moves", n)
			}
			if !board.PlaceAt(index, game.PlayerTwo) {
				t.Fatalf("NextMove picked occupied cell %d", index)
			}
		}
		if _, ok := r.NextMove(board); ok {
			t.Error("NextMove on a full board should report false")
		}
	})
}
