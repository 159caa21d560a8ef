package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/plus3/linefall/tetris"
)

const (
	// DefaultBlockSize is the side of one cell in logical pixels.
	DefaultBlockSize = 30
	// PreviewCells is the side of the square next-piece preview, in cells.
	PreviewCells = 4

	gridLineWidth   = 0.5
	cellStrokeWidth = 1
)

// Renderer draws a play field of a fixed size.
type Renderer struct {
	Cols, Rows int
	BlockSize  float32
}

// NewRenderer creates a renderer for a cols×rows field.
func NewRenderer(cols, rows int) *Renderer {
	return &Renderer{Cols: cols, Rows: rows, BlockSize: DefaultBlockSize}
}

// FieldSize returns the play field size in logical pixels.
func (r *Renderer) FieldSize() (w, h float32) {
	return float32(r.Cols) * r.BlockSize, float32(r.Rows) * r.BlockSize
}

// PreviewSize returns the side of the preview square in logical pixels.
func (r *Renderer) PreviewSize() float32 {
	return PreviewCells * r.BlockSize
}

// DrawField draws the background, the grid, the board and the active piece.
func (r *Renderer) DrawField(s Surface, board *tetris.Board, active tetris.Piece) {
	w, h := r.FieldSize()
	s.FillRect(0, 0, w, h, Background)

	for x := 0; x <= r.Cols; x++ {
		px := float32(x) * r.BlockSize
		s.Line(px, 0, px, h, gridLineWidth, GridLine)
	}
	for y := 0; y <= r.Rows; y++ {
		py := float32(y) * r.BlockSize
		s.Line(0, py, w, py, gridLineWidth, GridLine)
	}

	for y := range board.Rows() {
		for x := range board.Cols() {
			r.drawCell(s, float32(x), float32(y), board.At(x, y), true)
		}
	}

	r.drawMatrix(s, active.Matrix, float32(active.X), float32(active.Y), true)
}

// DrawPreview draws next centered in a PreviewCells×PreviewCells square.
func (r *Renderer) DrawPreview(s Surface, next tetris.Matrix) {
	size := r.PreviewSize()
	s.FillRect(0, 0, size, size, Background)

	ox := float32(PreviewCells-next.Width()) / 2
	oy := float32(PreviewCells-next.Height()) / 2
	r.drawMatrix(s, next, ox, oy, false)
}

func (r *Renderer) drawMatrix(s Surface, m tetris.Matrix, ox, oy float32, highlight bool) {
	for y, row := range m {
		for x, c := range row {
			r.drawCell(s, float32(x)+ox, float32(y)+oy, c, highlight)
		}
	}
}

func (r *Renderer) drawCell(s Surface, cx, cy float32, c tetris.Cell, highlight bool) {
	fill := CellColor(c)
	if fill == nil {
		return
	}

	bs := r.BlockSize
	x, y := cx*bs, cy*bs
	s.FillRect(x, y, bs, bs, fill)
	s.StrokeRect(x, y, bs, bs, cellStrokeWidth, CellStroke)

	if highlight {
		inset := bs / 15
		strip := bs * 2 / 15
		s.FillRect(x+inset, y+inset, bs-2*inset, strip, Highlight)
		s.FillRect(x+inset, y+inset, strip, bs-2*inset, Highlight)
	}
}

// StatusLines formats the HUD text.
func StatusLines(st tetris.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d\n\n", st.Score)
	b.WriteString(st.Message)
	b.WriteString("\n\n")
	b.WriteString(st.RevealHint)
	b.WriteString("\n")
	b.WriteString(st.GoalHint)
	fmt.Fprintf(&b, "\nNow: %d", st.Lines)
	return b.String()
}

// DrawStatus draws the HUD text at (x, y).
func (r *Renderer) DrawStatus(s Surface, x, y float32, st tetris.Status) {
	s.Text(StatusLines(st), x, y, TextColor)
}

// Button is a labelled rectangle.
type Button struct {
	Label      string
	X, Y, W, H float32
}

// DrawButtons draws each button as a filled, outlined box with its label.
func (r *Renderer) DrawButtons(s Surface, buttons []Button) {
	for _, b := range buttons {
		s.FillRect(b.X, b.Y, b.W, b.H, ButtonFill)
		s.StrokeRect(b.X, b.Y, b.W, b.H, cellStrokeWidth, CellStroke)
		s.Text(b.Label, b.X+4, b.Y+4, TextColor)
	}
}

// DrawBanner dims the field and writes text across it.
func (r *Renderer) DrawBanner(s Surface, text string) {
	w, h := r.FieldSize()
	s.FillRect(0, 0, w, h, Dim)
	s.Text(text, r.BlockSize/2, h/2-r.BlockSize/2, TextColor)
}

// Banner returns the overlay text for a session state, or "" while running.
func Banner(state tetris.State) string {
	switch state {
	case tetris.StatePaused:
		return "PAUSED"
	case tetris.StateOver:
		return "GAME OVER\nStart to play again"
	case tetris.StateWon:
		return "Congrats! You cleared 12 lines!\nHUMANDA KA!!"
	default:
		return ""
	}
}

// Transparent reports whether c carries any transparency. Character-cell
// surfaces use it to skip overlays they cannot blend.
func Transparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a < 0xffff
}
