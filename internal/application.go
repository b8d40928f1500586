package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
)

// RunApp - runs the console game until the players leave or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input, err := console.NewReadlineInput(conf.Console.Prompt)
	if err != nil {
		return fmt.Errorf("could not open console input: %w", err)
	}

	defer func() {
		if err = input.Close(); err != nil {
			log.Error("could not close console input", "error", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
			// unblocks a pending read
			_ = input.Close()
		case <-ctx.Done():
		}
	}()

	var confirmer console.Confirmer
	if conf.Console.Replay {
		confirmer = console.NewPromptConfirmer()
	}

	clearScreen := console.ShouldClear(conf.Console.ClearScreen, os.Stdout)
	session := console.NewSession(logger, input, confirmer, os.Stdout, clearScreen)

	log.Debug("Starting console session", "replay", conf.Console.Replay, "clear_screen", clearScreen)

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}
