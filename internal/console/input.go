package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var quitCommands = []string{"quit", "exit"}

// MoveReader supplies one raw move request per call. io.EOF or apperror.ErrQuit ends the session.
type MoveReader interface {
	ReadMove() (string, error)
}

// ReadlineInput reads moves from the terminal with line editing and in-session history.
type ReadlineInput struct {
	rl        *readline.Instance
	closeOnce sync.Once
}

func NewReadlineInput(prompt string) (*ReadlineInput, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "",
		AutoComplete:      createAutoCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistoryLimit:      100,
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &ReadlineInput{rl: rl}, nil
}

func (that *ReadlineInput) ReadMove() (string, error) {
	line, err := that.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", apperror.ErrQuit
	}
	if err != nil {
		return "", err
	}

	return line, nil
}

// Close releases the terminal. It unblocks a pending ReadMove and is safe to call more than once.
func (that *ReadlineInput) Close() error {
	var err error
	that.closeOnce.Do(func() {
		err = that.rl.Close()
	})

	return err
}

func createAutoCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(quitCommands))
	for _, cmd := range quitCommands {
		items = append(items, readline.PcItem(cmd))
	}

	return readline.NewPrefixCompleter(items...)
}

// ParseMove converts a raw line into a cell index. The range is checked by the engine.
func ParseMove(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty move", apperror.ErrInvalidInput)
	}

	cell, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a cell number between 0 and %d", apperror.ErrInvalidInput, trimmed, entity.BoardSize-1)
	}

	return cell, nil
}

func isQuitCommand(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for _, cmd := range quitCommands {
		if trimmed == cmd {
			return true
		}
	}

	return false
}
