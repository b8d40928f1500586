package render

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "-----------"

// Board draws the 3x3 grid. Empty cells show their index so the player knows what to type.
func Board(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n" + rowSeparator + "\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + identifier(&board, row*3+col) + " ")
		}
	}

	return sb.String()
}

func identifier(board *entity.Board, cell int) string {
	if marker := board.Cell(cell); marker.IsPlayer() {
		return marker.String()
	}

	return strconv.Itoa(cell)
}
