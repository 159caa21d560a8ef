// Command linefall is the windowed (and browser) build of the game.
package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/logging"
)

func main() {
	cfg, err := config.Load("linefall", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	game := NewGame(cfg, logger)

	ebiten.SetWindowTitle("linefall")
	ebiten.SetWindowSize(int(screenWidth*cfg.Scale), int(screenHeight*cfg.Scale))

	logger.Info().Uint64("seed", cfg.Seed).Bool("debug", cfg.Debug).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
