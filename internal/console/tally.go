package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Tally counts round results for the lifetime of the process.
type Tally struct {
	CrossWins  int
	CircleWins int
	Draws      int
}

func (that *Tally) Record(state entity.GameState) {
	switch {
	case state.Status == entity.StatusDraw:
		that.Draws++
	case state.Status == entity.StatusWon && state.Winner == entity.Cross:
		that.CrossWins++
	case state.Status == entity.StatusWon && state.Winner == entity.Circle:
		that.CircleWins++
	}
}

func (that Tally) Rounds() int {
	return that.CrossWins + that.CircleWins + that.Draws
}

func (that Tally) String() string {
	return fmt.Sprintf("Cross %d - Circle %d - Draws %d", that.CrossWins, that.CircleWins, that.Draws)
}
