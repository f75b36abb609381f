package game

import (
	"strings"
)

// Cell is the content of one board position. The values double as the
// per-cell weight of a line sum.
type Cell int8

// Board holds the nine cells row-major: index = row*3 + col.
type Board [CellCount]Cell

// Line is one of the eight winning triples of board indices.
type Line [3]int

const (
	Empty     Cell = 0
	PlayerOne Cell = 1
	PlayerTwo Cell = -1
)

// Lines lists the winning triples in scan order: rows, columns, then the
// main and anti diagonals.
var Lines = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// PlaceAt writes c into the cell at index if that cell is empty.
func (b *Board) PlaceAt(index int, c Cell) bool {
	if index < BorderMin || index > BorderMax {
		return false
	}
	if b[index] != Empty {
		return false
	}

	b[index] = c
	return true
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyIndices returns the indices of all empty cells in ascending order.
func (b *Board) EmptyIndices() []int {
	indices := make([]int, 0, CellCount)
	for i, c := range b {
		if c == Empty {
			indices = append(indices, i)
		}
	}
	return indices
}

// WinningLine returns the first line, in scan order, whose three cells
// belong to the same player.
func (b *Board) WinningLine() (Line, bool) {
	for _, line := range Lines {
		switch b.lineSum(line) {
		case winSum, -winSum:
			return line, true
		}
	}
	return Line{}, false
}

// Classify derives the phase of the board.
func (b *Board) Classify() Phase {
	if line, ok := b.WinningLine(); ok {
		if b[line[0]] == PlayerOne {
			return WinPlayerOne
		}
		return WinPlayerTwo
	}

	if b.IsFull() {
		return Draw
	}

	return Continue
}

// Reset empties every cell.
func (b *Board) Reset() {
	*b = Board{}
}

func (b *Board) lineSum(line Line) int {
	return int(b[line[0]]) + int(b[line[1]]) + int(b[line[2]])
}

// String renders the board as three rows of glyphs, e.g. "OX-\n-O-\n--X".
func (b Board) String() string {
	var sb strings.Builder
	for row := range Side {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Side {
			sb.WriteString(b[Index(row, col)].String())
		}
	}
	return sb.String()
}

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "O"
	case PlayerTwo:
		return "X"
	default:
		return "-"
	}
}

// Opponent returns the mark of the other player. Empty maps to Empty.
func (c Cell) Opponent() Cell {
	return -c
}
