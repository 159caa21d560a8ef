package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/render"
	termsurface "github.com/plus3/linefall/render/tcell"
	"github.com/plus3/linefall/tetris"
)

const (
	frameInterval = time.Second / 60
	eventBuffer   = 64

	sidebarX = tetris.DefaultCols*render.DefaultBlockSize + 2*termsurface.CellWidth
	statusY  = (render.PreviewCells + 1) * render.DefaultBlockSize
)

// TermGame runs a session on a tcell screen.
type TermGame struct {
	screen    tcell.Screen
	session   *tetris.Session
	scheduler *loop.Scheduler
	events    chan tcell.Event
	runes     *input.Keymap[rune]
	keys      *input.Keymap[tcell.Key]
	quit      context.CancelFunc
	logger    zerolog.Logger
}

// DefaultKeymap returns bindings for tcell's non-rune keys.
func DefaultKeymap() *input.Keymap[tcell.Key] {
	return input.NewKeymap[tcell.Key]().
		Bind(input.MoveLeft, tcell.KeyLeft).
		Bind(input.MoveRight, tcell.KeyRight).
		Bind(input.SoftDrop, tcell.KeyDown).
		Bind(input.Rotate, tcell.KeyUp).
		Bind(input.Start, tcell.KeyEnter).
		Bind(input.Quit, tcell.KeyEscape, tcell.KeyCtrlC)
}

// NewTermGame wires input, the drop timer, sound cues and rendering.
func NewTermGame(screen tcell.Screen, cfg config.Config, logger zerolog.Logger, player Player, quit context.CancelFunc) *TermGame {
	g := &TermGame{
		screen:    screen,
		scheduler: loop.NewScheduler(),
		events:    make(chan tcell.Event, eventBuffer),
		runes:     input.RuneKeymap(),
		keys:      DefaultKeymap(),
		quit:      quit,
		logger:    logger,
	}

	cues := NewCues(player)
	opts := []tetris.Option{
		tetris.WithLogger(logger.With().Str("component", "session").Logger()),
		tetris.WithDisplay(cues),
		tetris.WithNavigator(tetris.NavigatorFunc(func() {
			logger.Info().Msg("line goal reached")
		})),
	}
	if cfg.Seed != 0 {
		opts = append(opts, tetris.WithSeed(cfg.Seed))
	}
	g.session = tetris.NewSession(opts...)

	surface := termsurface.New(screen)
	renderer := render.NewRenderer(tetris.DefaultCols, tetris.DefaultRows)

	g.scheduler.Register(&input.System{
		Session: g.session,
		Pollers: []input.Poller{input.PollerFunc(g.drainEvents)},
		OnQuit:  quit,
	})
	g.scheduler.Register(&tetris.DropSystem{Session: g.session})
	g.scheduler.Register(&CueSystem{Session: g.session, Cues: cues})
	g.scheduler.Register(&render.System{
		Renderer: renderer,
		Session:  g.session,
		Layout: render.Layout{
			PreviewX: sidebarX,
			StatusX:  sidebarX,
			StatusY:  statusY,
		},
		Surface: func() render.Surface {
			screen.Clear()
			return surface
		},
		Present: screen.Show,
	})
	return g
}

// Session returns the running session.
func (g *TermGame) Session() *tetris.Session {
	return g.session
}

// PumpEvents forwards screen events to the frame loop until the screen is
// finalized. It blocks and is meant to run on its own goroutine.
func (g *TermGame) PumpEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		default:
			g.logger.Debug().Msg("event buffer full, dropping event")
		}
	}
}

// Run drives the scheduler until ctx is cancelled.
func (g *TermGame) Run(ctx context.Context) {
	g.scheduler.Run(ctx, frameInterval)
}

func (g *TermGame) drainEvents(q *input.Queue) {
	for {
		select {
		case ev := <-g.events:
			q.Push(g.translate(ev))
		default:
			return
		}
	}
}

func (g *TermGame) translate(ev tcell.Event) input.Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			intent, _ := g.runes.Lookup(ev.Rune())
			return intent
		}
		intent, _ := g.keys.Lookup(ev.Key())
		return intent
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return input.None
}
