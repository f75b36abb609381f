package game

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Session owns the board, the turn and the phase of one game.
type Session struct {
	Board Board
	Turn  Turn
	Phase Phase
}

func NewSession() *Session {
	return &Session{
		Board: Board{},
		Turn:  PlayerOneTurn,
		Phase: Continue,
	}
}

// Move places the mark of the current turn at index, flips the turn and
// reclassifies the board.
func (s *Session) Move(index int) error {
	if s.Phase != Continue {
		return fmt.Errorf("%w: phase %s", ErrGameFinished, s.Phase)
	}
	if index < BorderMin || index > BorderMax {
		return fmt.Errorf("%w: %d", ErrInvalidCell, index)
	}
	if !s.Board.PlaceAt(index, s.Turn.Mark()) {
		return ErrCellOccupied
	}

	s.Turn = s.Turn.Next()
	s.Phase = s.Board.Classify()
	return nil
}

// Place is Move without the reason for a rejection.
func (s *Session) Place(index int) bool {
	return s.Move(index) == nil
}

// Mark returns the cell value of the player whose turn it is.
func (s *Session) Mark() Cell {
	return s.Turn.Mark()
}

// RequestReset enters the Start phase. The reset itself happens in Step.
func (s *Session) RequestReset() {
	if s.Phase != Start {
		s.Phase = Start
	}
}

// Step resolves the Start phase and reports whether the session was reset.
func (s *Session) Step() bool {
	if s.Phase != Start {
		return false
	}
	s.Reset()
	return true
}

// Reset empties the board and hands the first turn to player one.
func (s *Session) Reset() {
	s.Board.Reset()
	s.Turn = PlayerOneTurn
	s.Phase = Continue
}
