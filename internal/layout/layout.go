// Package layout maps between window pixels and board cells and picks the
// text drawn for a board state. It has no graphics dependency.
package layout

import (
	"ctchen222/titac/internal/game"
)

const restartHint = "\nPress SPACE to restart."

// Point is a position in window pixels.
type Point struct {
	X, Y float32
}

// CellSize returns the width and height of one cell.
func CellSize(width, height int) (int, int) {
	return width / game.Side, height / game.Side
}

// IndexAt resolves a pointer position to a board index. Positions outside
// the window, or in the remainder strip when the size is not a multiple
// of three, are rejected.
func IndexAt(x, y float32, width, height int) (int, bool) {
	cw, ch := CellSize(width, height)
	if cw == 0 || ch == 0 || x < 0 || y < 0 {
		return -1, false
	}

	col := int(x) / cw
	row := int(y) / ch
	if col >= game.Side || row >= game.Side {
		return -1, false
	}

	return game.Index(row, col), true
}

// CellOrigin returns the top-left corner of a cell.
func CellOrigin(index, width, height int) Point {
	cw, ch := CellSize(width, height)
	row, col := game.RowCol(index)
	return Point{X: float32(col * cw), Y: float32(row * ch)}
}

// CellCenter returns the centre of a cell.
func CellCenter(index, width, height int) Point {
	cw, ch := CellSize(width, height)
	p := CellOrigin(index, width, height)
	return Point{X: p.X + float32(cw)/2, Y: p.Y + float32(ch)/2}
}

// LineSegment returns the endpoints of the stroke through a winning line.
func LineSegment(line game.Line, width, height int) (Point, Point) {
	return CellCenter(line[0], width, height), CellCenter(line[2], width, height)
}

// GlyphPadding returns the offset of a glyph inside its cell, scaled with
// the window's aspect ratio.
func GlyphPadding(width, height int) (left, top int) {
	if height == 0 {
		return 0, 0
	}
	return 38 * width / height, 28 * width / height
}

// Glyph is the text drawn for a cell.
func Glyph(c game.Cell) string {
	return c.String()
}

// Overlay returns the message shown over a finished board, or "" while
// the game is running.
func Overlay(p game.Phase) string {
	switch p {
	case game.WinPlayerOne:
		return "P1 wins!" + restartHint
	case game.WinPlayerTwo:
		return "P2 wins!" + restartHint
	case game.Draw:
		return "Draw!" + restartHint
	default:
		return ""
	}
}
