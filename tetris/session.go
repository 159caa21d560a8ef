package tetris

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// Game constants.
const (
	DefaultCols = 10
	DefaultRows = 13

	// DropInterval is how long a piece hangs before it falls one row.
	DropInterval = 2000 * time.Millisecond

	ScorePerRow = 10

	// RevealThreshold is the number of cleared lines that reveals a fragment.
	RevealThreshold = 1
	// VictoryLines is the lifetime line count that ends the stage.
	VictoryLines = 12

	// revealResidual is what the short-term line counter is set to after a
	// reveal. Being above RevealThreshold, every later clear reveals at once.
	revealResidual = 2
)

// State is the coarse lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateOver
	StateWon
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "game over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used to pick shapes.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a PCG source used to pick shapes.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithDisplay sets the HUD collaborator.
func WithDisplay(d Display) Option {
	return func(s *Session) { s.display = d }
}

// WithNavigator sets the collaborator told about victory.
func WithNavigator(n Navigator) Option {
	return func(s *Session) { s.navigator = n }
}

// WithFragments replaces the revealed message.
func WithFragments(fragments []string) Option {
	return func(s *Session) { s.reveal = NewReveal(fragments) }
}

// WithSize sets the board dimensions.
func WithSize(cols, rows int) Option {
	return func(s *Session) { s.cols, s.rows = cols, rows }
}

// Session is one game: board, active and next piece, counters and reveal.
type Session struct {
	cols, rows int
	board      *Board
	active     Piece
	next       Shape

	dropCounter time.Duration
	paused      bool
	over        bool
	won         bool

	score      int
	lines      int
	totalLines int
	reveal     *Reveal
	locks      int

	rng        *rand.Rand
	logger     zerolog.Logger
	display    Display
	navigator  Navigator
	lastStatus Status
	published  bool
}

// NewSession creates a session and starts its first game.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cols:   DefaultCols,
		rows:   DefaultRows,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.reveal == nil {
		s.reveal = NewReveal(DefaultFragments)
	}
	s.Reset()
	return s
}

// Reset starts a new game: empty board, fresh piece pair, counters and
// reveal at zero, not paused.
func (s *Session) Reset() {
	if s.board == nil {
		s.board = NewBoard(s.cols, s.rows)
	} else {
		s.board.Reset()
	}
	s.next = s.randomShape()
	s.score = 0
	s.lines = 0
	s.totalLines = 0
	s.locks = 0
	s.reveal.Reset()
	s.dropCounter = 0
	s.over = false
	s.won = false
	s.paused = false
	s.spawn()
	s.logger.Debug().Stringer("active", s.activeShape()).Stringer("next", s.next).Msg("game reset")
	s.publish()
}

// Start resumes play, starting a new game first if the last one ended.
func (s *Session) Start() {
	if s.over || s.won {
		s.Reset()
	}
	s.paused = false
}

// TogglePause flips the paused flag while a game is in progress.
func (s *Session) TogglePause() {
	if s.over || s.won {
		return
	}
	s.paused = !s.paused
	s.logger.Debug().Bool("paused", s.paused).Msg("pause toggled")
}

// MoveHorizontal shifts the active piece one column in dir (-1 or +1)
// unless that collides.
func (s *Session) MoveHorizontal(dir int) {
	if !s.accepting() {
		return
	}
	moved := s.active.Moved(dir, 0)
	if Collides(s.board, moved) {
		return
	}
	s.active = moved
}

// Rotate turns the active piece clockwise with sideways nudging.
func (s *Session) Rotate() {
	s.rotate(Clockwise)
}

// RotateCounter turns the active piece counter-clockwise with sideways nudging.
func (s *Session) RotateCounter() {
	s.rotate(CounterClockwise)
}

func (s *Session) rotate(dir Direction) {
	if !s.accepting() {
		return
	}
	if rotated, ok := Rotate(s.board, s.active, dir); ok {
		s.active = rotated
	}
}

// SoftDrop moves the active piece down one row, locking it if it cannot
// move. The automatic drop timer restarts either way.
func (s *Session) SoftDrop() {
	if !s.accepting() {
		return
	}
	moved := s.active.Moved(0, 1)
	if Collides(s.board, moved) {
		s.lock()
	} else {
		s.active = moved
	}
	s.dropCounter = 0
}

// HardDrop drops the active piece to the lowest free row and locks it.
func (s *Session) HardDrop() {
	if !s.accepting() {
		return
	}
	for !Collides(s.board, s.active.Moved(0, 1)) {
		s.active.Y++
	}
	s.lock()
}

// Tick advances the automatic drop timer by dt and drops the piece once the
// timer passes DropInterval. It reports whether a drop happened.
func (s *Session) Tick(dt time.Duration) bool {
	if !s.accepting() {
		return false
	}
	s.dropCounter += dt
	if s.dropCounter > DropInterval {
		s.SoftDrop()
		return true
	}
	return false
}

func (s *Session) accepting() bool {
	return !s.paused && !s.over && !s.won
}

// lock merges the active piece, spawns the next one, clears rows and
// publishes the status. Spawn happens before clearing.
func (s *Session) lock() {
	s.board.Merge(s.active)
	s.locks++
	s.logger.Debug().Stringer("shape", s.activeShape()).Int("x", s.active.X).Int("y", s.active.Y).Msg("piece locked")
	s.spawn()
	s.clearLines()
	s.publish()
}

func (s *Session) spawn() {
	m := s.next.Matrix()
	s.active = Piece{
		Matrix: m,
		X:      s.cols/2 - m.Width()/2,
		Y:      0,
	}
	s.next = s.randomShape()

	if Collides(s.board, s.active) {
		s.over = true
		s.logger.Info().Int("score", s.score).Int("lines", s.totalLines).Msg("game over")
	}

	if s.display != nil {
		s.display.NextChanged(s.next.Matrix())
	}
}

func (s *Session) clearLines() int {
	rows := s.board.ClearFullRows()
	if rows == 0 {
		return 0
	}

	s.lines += rows
	s.totalLines += rows
	s.score += rows * ScorePerRow
	s.logger.Debug().Int("rows", rows).Int("score", s.score).Int("total", s.totalLines).Msg("rows cleared")

	if s.lines >= RevealThreshold {
		s.lines = revealResidual
		if s.reveal.Advance() {
			s.logger.Info().Int("revealed", s.reveal.Count()).Msg("fragment revealed")
		}
	}

	if s.totalLines >= VictoryLines && !s.won {
		s.won = true
		s.logger.Info().Int("score", s.score).Int("lines", s.totalLines).Msg("line goal reached")
		if s.navigator != nil {
			s.navigator.Advance()
		}
	}
	return rows
}

func (s *Session) publish() {
	status := s.Status()
	if s.published && status == s.lastStatus {
		return
	}
	s.lastStatus = status
	s.published = true
	if s.display != nil {
		s.display.StatusChanged(status)
	}
}

func (s *Session) randomShape() Shape {
	return Shape(s.rng.IntN(ShapeCount) + 1)
}

func (s *Session) activeShape() Shape {
	for _, row := range s.active.Matrix {
		for _, c := range row {
			if c != Empty {
				return Shape(c)
			}
		}
	}
	return 0
}

// Status returns the current HUD values.
func (s *Session) Status() Status {
	return Status{
		Score:      s.score,
		Message:    s.reveal.Text(),
		RevealHint: RevealHint(RevealThreshold),
		GoalHint:   GoalHint(VictoryLines),
		Lines:      s.totalLines,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	switch {
	case s.won:
		return StateWon
	case s.over:
		return StateOver
	case s.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *Board { return s.board }

// Active returns the falling piece.
func (s *Session) Active() Piece { return s.active }

// Next returns the shape that spawns after the active piece locks.
func (s *Session) Next() Shape { return s.next }

// Score returns the score.
func (s *Session) Score() int { return s.score }

// Lines returns the lifetime cleared line count of the current game.
func (s *Session) Lines() int { return s.totalLines }

// Revealed returns how many message fragments are visible.
func (s *Session) Revealed() int { return s.reveal.Count() }

// Reveal returns the reveal state.
func (s *Session) Reveal() *Reveal { return s.reveal }

// Locks returns how many pieces were locked in the current game.
func (s *Session) Locks() int { return s.locks }

// DropCounter returns the time accumulated towards the next automatic drop.
func (s *Session) DropCounter() time.Duration { return s.dropCounter }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Over reports whether the last spawn collided.
func (s *Session) Over() bool { return s.over }

// Won reports whether the line goal was reached.
func (s *Session) Won() bool { return s.won }
