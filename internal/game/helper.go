package game

// Board dimensions
const (
	Side      = 3
	CellCount = Side * Side
)

// Border
const (
	BorderMin = 0             // First index of the board
	BorderMax = CellCount - 1 // Last index of the board
)

// A line sum of +3 or -3 means three marks of one player.
const winSum = Side

// Index converts a row and column into a board index.
func Index(row, col int) int {
	return row*Side + col
}

// RowCol converts a board index into its row and column.
func RowCol(index int) (row, col int) {
	return index / Side, index % Side
}
