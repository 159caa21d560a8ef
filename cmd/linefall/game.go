package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/input"
	inputeb "github.com/plus3/linefall/input/ebiten"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/render"
	rendereb "github.com/plus3/linefall/render/ebiten"
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

// Game implements ebiten.Game around one session.
type Game struct {
	session   *tetris.Session
	scheduler *loop.Scheduler
	renderer  *render.Renderer
	surface   *rendereb.Surface
	preview   *rendereb.Preview
	buttons   input.Buttons
	overlay   overlay
	status    tetris.Status
	quit      bool
	logger    zerolog.Logger
}

var _ tetris.Display = (*Game)(nil)

// NewGame wires the session, input, drop timer and overlay into a scheduler.
func NewGame(cfg config.Config, logger zerolog.Logger) *Game {
	renderer := render.NewRenderer(tetris.DefaultCols, tetris.DefaultRows)
	g := &Game{
		scheduler: loop.NewScheduler(),
		renderer:  renderer,
		surface:   rendereb.New(nil),
		preview:   rendereb.NewPreview(renderer),
		buttons:   input.NewButtons(margin, buttonsY, screenWidth-2*margin, buttonHeight),
		logger:    logger,
	}

	opts := []tetris.Option{
		tetris.WithLogger(logger.With().Str("component", "session").Logger()),
		tetris.WithDisplay(g),
		tetris.WithNavigator(newNavigator(cfg.NextPage, logger)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, tetris.WithSeed(cfg.Seed))
	}
	g.session = tetris.NewSession(opts...)
	g.overlay = newOverlay(cfg, g.session, g.scheduler)

	poller := inputeb.NewPoller(g.session, g.buttons)
	poller.Captured = g.overlay.Captured

	g.scheduler.Register(&input.System{
		Session: g.session,
		Pollers: []input.Poller{poller},
		OnQuit:  func() { g.quit = true },
	})
	g.scheduler.Register(&tetris.DropSystem{Session: g.session})
	g.scheduler.Register(g.overlay)
	return g
}

// StatusChanged implements tetris.Display.
func (g *Game) StatusChanged(st tetris.Status) {
	g.status = st
}

// NextChanged implements tetris.Display.
func (g *Game) NextChanged(next tetris.Matrix) {
	g.preview.NextChanged(next)
}

func (g *Game) Update() error {
	g.overlay.BeginFrame()
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	g.overlay.EndFrame()

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.surface.Target = screen

	field := render.Offset{Surface: g.surface, X: margin, Y: margin}
	g.renderer.DrawField(field, g.session.Board(), g.session.Active())
	if banner := render.Banner(g.session.State()); banner != "" {
		g.renderer.DrawBanner(field, banner)
	}

	g.preview.DrawTo(screen, sidebarX, margin)
	g.renderer.DrawStatus(g.surface, sidebarX, statusY, g.status)
	g.renderer.DrawButtons(g.surface, g.buttons.Render())

	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(screenWidth, screenHeight)
	return screenWidth, screenHeight
}
