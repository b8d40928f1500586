package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/render"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	noticeInvalidInput = "Invalid move!"
	noticeInvalidMove  = "Invalid move"
	replayLabel        = "Play again"
)

// Session drives rounds of the game on a console. Each round gets its own engine.
type Session struct {
	logger *slog.Logger

	input     MoveReader
	confirmer Confirmer
	out       io.Writer

	clearScreen bool
	tally       Tally
}

// NewSession builds a session. A nil confirmer plays a single round.
func NewSession(logger *slog.Logger, input MoveReader, confirmer Confirmer, out io.Writer, clearScreen bool) *Session {
	return &Session{
		logger:      logger.With("component", "console"),
		input:       input,
		confirmer:   confirmer,
		out:         out,
		clearScreen: clearScreen,
	}
}

// Run plays rounds until the players decline a replay, quit, close the input or the context ends.
func (that *Session) Run(ctx context.Context) error {
	defer that.printTally()

	for {
		state, err := that.Play(ctx)
		if err != nil {
			if isSessionEnd(err) {
				that.logger.Info("session ended", "reason", err)
				return nil
			}

			return fmt.Errorf("round failed: %w", err)
		}

		that.tally.Record(state)

		if that.confirmer == nil {
			return nil
		}

		again, err := that.confirmer.Confirm(replayLabel)
		if err != nil {
			return fmt.Errorf("failed to ask for another round: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// Play runs one round on a fresh engine and returns its terminal state.
func (that *Session) Play(ctx context.Context) (entity.GameState, error) {
	log := that.logger.With("method", "Play")

	engine := tictactoe.NewEngine()
	notice := ""

	for {
		// the state is recomputed after every move, never cached
		state := engine.State()
		if state.IsTerminal() {
			that.draw(engine.Board(), "")
			that.println(state.String())

			log.Info("round finished", "status", state.Status, "winner", state.Winner.Name(), "moves", engine.Moves())

			return state, nil
		}

		if err := ctx.Err(); err != nil {
			return state, err
		}

		that.draw(engine.Board(), notice)
		notice = ""
		that.println(fmt.Sprintf("\n%s (%s) to move.", engine.Turn().Name(), engine.Turn()))

		raw, err := that.input.ReadMove()
		if err != nil {
			return state, fmt.Errorf("failed to read move: %w", err)
		}

		if isQuitCommand(raw) {
			return state, apperror.ErrQuit
		}

		cell, err := ParseMove(raw)
		if err != nil {
			log.Debug("move rejected", "input", raw, "error", err)
			notice = noticeInvalidInput
			continue
		}

		player := engine.Turn()
		if err = engine.Play(cell); err != nil {
			if !errors.Is(err, apperror.ErrInvalidMove) {
				return state, fmt.Errorf("failed to play cell %d: %w", cell, err)
			}

			log.Debug("move rejected", "cell", cell, "player", player.Name(), "error", err)
			notice = noticeInvalidMove
			continue
		}

		log.Debug("move accepted", "cell", cell, "player", player.Name())
	}
}

// Tally returns the results recorded so far.
func (that *Session) Tally() Tally {
	return that.tally
}

func (that *Session) draw(board entity.Board, notice string) {
	if that.clearScreen {
		clearScreen(that.out)
	}

	that.println(render.Board(board))

	if notice != "" {
		that.println(notice)
	}
}

func (that *Session) printTally() {
	if that.tally.Rounds() == 0 {
		return
	}

	that.println(fmt.Sprintf("\nRounds played: %d (%s)", that.tally.Rounds(), that.tally))
}

func (that *Session) println(line string) {
	fmt.Fprintln(that.out, line)
}

func isSessionEnd(err error) bool {
	return errors.Is(err, apperror.ErrQuit) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}
