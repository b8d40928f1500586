package entity

const BoardSize = 9

// WinCombos lists every line of three cells that wins the game: rows, columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the nine cells in row-major order.
type Board [BoardSize]Marker

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Cell returns the marker at the given index, or NoMarker for an index outside the board.
func (that *Board) Cell(cell int) Marker {
	if !IsValidCell(cell) {
		return NoMarker
	}

	return that[cell]
}

func (that *Board) IsEmpty(cell int) bool {
	return that.Cell(cell) == NoMarker
}

// Occupied returns the number of cells holding a marker.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != NoMarker {
			count++
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Occupied() == BoardSize
}

// Owns reports whether every cell of the line holds the marker.
func (that *Board) Owns(marker Marker, line [3]int) bool {
	if !marker.IsPlayer() {
		return false
	}

	return that[line[0]] == marker && that[line[1]] == marker && that[line[2]] == marker
}

// HasLine reports whether the marker owns any winning line.
func (that *Board) HasLine(marker Marker) bool {
	for _, line := range WinCombos {
		if that.Owns(marker, line) {
			return true
		}
	}

	return false
}
