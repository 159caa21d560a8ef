//go:build !js

// Command linefall-raylib is a desktop build of the game on raylib.
package main

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/logging"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/render"
	rlsurface "github.com/plus3/linefall/render/raylib"
	"github.com/plus3/linefall/tetris"
)

const (
	margin       = 10
	sidebarX     = margin + tetris.DefaultCols*render.DefaultBlockSize + margin
	statusY      = margin + render.PreviewCells*render.DefaultBlockSize + margin
	buttonsY     = margin + tetris.DefaultRows*render.DefaultBlockSize + margin
	buttonHeight = 40
	screenWidth  = sidebarX + 220
	screenHeight = buttonsY + buttonHeight + margin
)

func main() {
	cfg, err := config.Load("linefall-raylib", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(screenWidth*cfg.Scale), int32(screenHeight*cfg.Scale), "linefall")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	opts := []tetris.Option{
		tetris.WithLogger(logger.With().Str("component", "session").Logger()),
		tetris.WithNavigator(tetris.NavigatorFunc(func() {
			logger.Info().Msg("line goal reached")
		})),
	}
	if cfg.Seed != 0 {
		opts = append(opts, tetris.WithSeed(cfg.Seed))
	}
	session := tetris.NewSession(opts...)
	buttons := input.NewButtons(margin, buttonsY, screenWidth-2*margin, buttonHeight)

	camera := rl.NewCamera2D(rl.NewVector2(0, 0), rl.NewVector2(0, 0), 0, float32(cfg.Scale))

	scheduler := loop.NewScheduler()
	scheduler.Register(&input.System{
		Session: session,
		Pollers: []input.Poller{NewPoller(buttons, float32(cfg.Scale))},
	})
	scheduler.Register(&tetris.DropSystem{Session: session})
	scheduler.Register(loop.SystemFunc(func(*loop.Frame) {
		rl.BeginDrawing()
		rl.ClearBackground(rlsurface.Color(render.Background))
		rl.BeginMode2D(camera)
	}))
	scheduler.Register(&render.System{
		Renderer: render.NewRenderer(tetris.DefaultCols, tetris.DefaultRows),
		Session:  session,
		Layout: render.Layout{
			FieldX:   margin,
			FieldY:   margin,
			PreviewX: sidebarX,
			PreviewY: margin,
			StatusX:  sidebarX,
			StatusY:  statusY,
			Buttons:  buttons.Render(),
		},
		Surface: func() render.Surface {
			return rlsurface.Surface{}
		},
		Present: func() {
			rl.EndMode2D()
			rl.EndDrawing()
		},
	})

	logger.Info().Uint64("seed", cfg.Seed).Msg("starting")
	lastTime := rl.GetTime()
	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		scheduler.Once(deltaTime)
	}
	logger.Info().Int("score", session.Score()).Int("lines", session.Lines()).Msg("stopped")
}
