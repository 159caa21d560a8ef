// Command linefall-term plays the game in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("linefall-term", args)
	if err != nil {
		return err
	}

	logPath := filepath.Join(os.TempDir(), "linefall-term.log")
	logger, logFile, err := logging.OpenFile(cfg.LogLevel, logPath)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sounds := NewSounds()
	if err := sounds.Init(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, playing silently")
	}
	defer sounds.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := NewTermGame(screen, cfg, logger, sounds, cancel)
	go game.PumpEvents()

	logger.Info().Str("log", logPath).Uint64("seed", cfg.Seed).Msg("starting")
	game.Run(ctx)
	logger.Info().Int("score", game.Session().Score()).Int("lines", game.Session().Lines()).Msg("stopped")
	return nil
}
