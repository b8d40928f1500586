package render

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBoard(t *testing.T) {
	t.Run("Empty board shows cell indexes", func(t *testing.T) {
		expected := " 0 | 1 | 2 \n" +
			"-----------\n" +
			" 3 | 4 | 5 \n" +
			"-----------\n" +
			" 6 | 7 | 8 "

		assert.Equal(t, expected, Board(entity.Board{}))
	})

	t.Run("Occupied cells show their symbol", func(t *testing.T) {
		// Given: Cross on 0 and 8, Circle on 4
		board := entity.Board{}
		board[0] = entity.Cross
		board[4] = entity.Circle
		board[8] = entity.Cross

		expected := " X | 1 | 2 \n" +
			"-----------\n" +
			" 3 | O | 5 \n" +
			"-----------\n" +
			" 6 | 7 | X "

		assert.Equal(t, expected, Board(board))
	})
}
