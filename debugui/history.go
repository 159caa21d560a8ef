package debugui

import "github.com/plus3/linefall/loop"

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

// NewFrameHistory returns a history holding the last n frames.
func NewFrameHistory(n int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, n)}
}

// Push records one frame of dt seconds.
func (h *FrameHistory) Push(dt float64) {
	if len(h.samples) == 0 {
		return
	}
	h.samples[h.index] = float32(dt * 1000)
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Samples returns the underlying ring in storage order.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// Average returns the mean frame time of the recorded frames.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// FPS returns the frame rate implied by Average, or 0 with no samples.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg == 0 {
		return 0
	}
	return 1000 / avg
}

// HistorySystem records each frame's delta time.
type HistorySystem struct {
	History *FrameHistory
}

// Execute implements loop.System.
func (s *HistorySystem) Execute(frame *loop.Frame) {
	s.History.Push(frame.DeltaTime)
}
