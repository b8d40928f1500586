package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// StartingMarker always makes the first move of a game.
const StartingMarker = entity.Cross

// Engine holds the board and the marker to move for a single game. An Engine is not safe for
// concurrent use; every game session owns its own instance.
type Engine struct {
	board entity.Board
	turn  entity.Marker
}

func NewEngine() *Engine {
	return &Engine{
		turn: StartingMarker,
	}
}

// Play places the current player's marker on the cell and passes the turn. A rejected move
// leaves the engine untouched and returns an error wrapping apperror.ErrInvalidMove.
func (that *Engine) Play(cell int) error {
	if err := that.validateMove(cell); err != nil {
		return err
	}

	that.board[cell] = that.turn
	that.turn = toggleMark(that.turn)

	return nil
}

// State classifies the current board. Cross is checked before Circle.
func (that *Engine) State() entity.GameState {
	return checkGameStatus(&that.board)
}

// Board returns a copy of the cells for rendering.
func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Turn() entity.Marker {
	return that.turn
}

func (that *Engine) Moves() int {
	return that.board.Occupied()
}

// validateMove - checks the range before touching the board.
func (that *Engine) validateMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if !that.board.IsEmpty(cell) {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	return nil
}

func toggleMark(current entity.Marker) entity.Marker {
	if current == entity.Cross {
		return entity.Circle
	}
	return entity.Cross
}

func checkGameStatus(board *entity.Board) entity.GameState {
	for _, marker := range []entity.Marker{entity.Cross, entity.Circle} {
		if board.HasLine(marker) {
			return entity.Winner(marker)
		}
	}

	// the game continues until every cell is taken
	if board.IsFull() {
		return entity.Draw()
	}

	return entity.Ongoing()
}
