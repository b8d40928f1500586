package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playAll(t *testing.T, engine *Engine, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, engine.Play(cell), "cell %d", cell)
	}
}

func TestNewEngine(t *testing.T) {
	// When: a new engine is created
	engine := NewEngine()

	// Then: the board is empty and Cross is to move
	assert.Equal(t, entity.Board{}, engine.Board())
	assert.Equal(t, entity.Cross, engine.Turn())
	assert.Equal(t, 0, engine.Moves())
	assert.Equal(t, entity.Ongoing(), engine.State())
}

func TestEngine_Play(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new engine
		engine := NewEngine()

		// When: the first move is played on cell 4
		err := engine.Play(4)
		require.NoError(t, err)

		// Then: Cross holds cell 4 and Circle is to move
		expectedBoard := entity.Board{}
		expectedBoard[4] = entity.Cross

		assert.Equal(t, expectedBoard, engine.Board())
		assert.Equal(t, entity.Circle, engine.Turn())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where cell 0 has been played
		engine := NewEngine()
		require.NoError(t, engine.Play(0))

		boardBefore := engine.Board()
		turnBefore := engine.Turn()

		// When: the same cell is played again
		err := engine.Play(0)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, boardBefore, engine.Board())
		assert.Equal(t, turnBefore, engine.Turn())
	})

	t.Run("Error on out of range cells", func(t *testing.T) {
		for _, cell := range []int{-100, -1, 9, 10, 20, 1 << 30} {
			// Given: a game with one move played
			engine := NewEngine()
			require.NoError(t, engine.Play(2))

			boardBefore := engine.Board()

			// When: a cell outside the board is played
			var err error
			require.NotPanics(t, func() { err = engine.Play(cell) })

			// Then: the move is rejected and nothing changes
			require.ErrorIs(t, err, apperror.ErrInvalidMove, "cell %d", cell)
			assert.Equal(t, boardBefore, engine.Board())
			assert.Equal(t, entity.Circle, engine.Turn())
		}
	})

	t.Run("Same cell twice on a new engine", func(t *testing.T) {
		// Given: a new engine
		engine := NewEngine()

		// When: cell 0 is played twice
		first := engine.Play(0)
		second := engine.Play(0)

		// Then: the first succeeds and the second is rejected
		require.NoError(t, first)
		require.ErrorIs(t, second, apperror.ErrInvalidMove)
	})
}

func TestEngine_TurnAlternation(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		engine := NewEngine()
		order := rand.New(rand.NewSource(seed)).Perm(entity.BoardSize) //nolint: gosec // it's ok

		for k, cell := range order {
			if engine.State().IsTerminal() {
				break
			}

			before := engine.Turn()
			if k == 0 {
				require.Equal(t, StartingMarker, before)
			}

			require.NoError(t, engine.Play(cell))

			// Then: the turn has passed and exactly k+1 cells are occupied
			board := engine.Board()
			assert.Equal(t, before.Other(), engine.Turn())
			assert.Equal(t, k+1, board.Occupied())
			assert.Equal(t, before, board.Cell(cell))
		}
	}
}

func TestEngine_State(t *testing.T) {
	t.Run("Cross wins on the first column", func(t *testing.T) {
		// Given: Cross plays 0, 3, 6 while Circle plays 1, 4
		engine := NewEngine()
		playAll(t, engine, 0, 1, 3, 4, 6)

		// Then: Cross is the winner
		assert.Equal(t, entity.Winner(entity.Cross), engine.State())
	})

	t.Run("Draw on a full board without a line", func(t *testing.T) {
		// Given: Cross holds 0, 2, 3, 7, 8 and Circle holds 1, 4, 5, 6
		engine := NewEngine()
		playAll(t, engine, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a draw
		assert.Equal(t, entity.Draw(), engine.State())
		assert.True(t, engine.State().IsTerminal())
	})

	t.Run("Full board with the Cross diagonal is a Cross win", func(t *testing.T) {
		// Given: Cross holds 0, 4, 5, 7, 8 and Circle holds 1, 2, 3, 6
		engine := NewEngine()
		engine.board = entity.Board{
			entity.Cross, entity.Circle, entity.Circle,
			entity.Circle, entity.Cross, entity.Cross,
			entity.Circle, entity.Cross, entity.Cross,
		}

		// Then: the diagonal 0, 4, 8 wins for Cross
		assert.Equal(t, entity.Winner(entity.Cross), engine.State())
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a few moves without a line
		engine := NewEngine()
		playAll(t, engine, 0, 4, 8)

		// Then: the game continues
		assert.Equal(t, entity.Ongoing(), engine.State())
	})

	t.Run("State is idempotent", func(t *testing.T) {
		// Given: a game in progress
		engine := NewEngine()
		playAll(t, engine, 0, 1, 3)

		// When: the state is queried repeatedly
		first := engine.State()

		// Then: every answer is the same and nothing changes
		for range 5 {
			assert.Equal(t, first, engine.State())
		}
		assert.Equal(t, 3, engine.Moves())
		assert.Equal(t, entity.Circle, engine.Turn())
	})

	t.Run("Cross is reported first when both markers own a line", func(t *testing.T) {
		// Given: a board that legal play cannot reach
		engine := NewEngine()
		engine.board = entity.Board{
			entity.Cross, entity.Cross, entity.Cross,
			entity.Circle, entity.Circle, entity.Circle,
		}

		// Then: Cross is reported as the winner
		assert.Equal(t, entity.Winner(entity.Cross), engine.State())
	})
}

func TestEngine_WinLines(t *testing.T) {
	for _, line := range entity.WinCombos {
		fillers := fillerCells(line)

		t.Run("Cross", func(t *testing.T) {
			// Given: Cross takes the line while Circle takes two other cells
			engine := NewEngine()
			playAll(t, engine, line[0], fillers[0], line[1], fillers[1], line[2])

			// Then: Cross wins
			assert.Equal(t, entity.Winner(entity.Cross), engine.State(), "line %v", line)
		})

		t.Run("Circle", func(t *testing.T) {
			// Given: Circle takes the line while Cross takes three cells that form no line
			engine := NewEngine()
			playAll(t, engine, fillers[0], line[0], fillers[1], line[1], fillers[2], line[2])

			// Then: Circle wins
			assert.Equal(t, entity.Winner(entity.Circle), engine.State(), "line %v", line)
		})
	}
}

// fillerCells picks three cells outside the line that do not form a winning line themselves.
func fillerCells(line [3]int) [3]int {
	var free []int
	for cell := range entity.BoardSize {
		if cell != line[0] && cell != line[1] && cell != line[2] {
			free = append(free, cell)
		}
	}

	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			for k := j + 1; k < len(free); k++ {
				var board entity.Board
				board[free[i]], board[free[j]], board[free[k]] = entity.Cross, entity.Cross, entity.Cross
				if !board.HasLine(entity.Cross) {
					return [3]int{free[i], free[j], free[k]}
				}
			}
		}
	}

	panic("no filler cells")
}
