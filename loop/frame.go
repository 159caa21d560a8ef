package loop

import "time"

// Frame carries the per-frame context handed to every System.
type Frame struct {
	// DeltaTime is the elapsed time since the previous frame in seconds.
	DeltaTime float64
	// Index counts frames executed by the owning Scheduler, starting at 1.
	Index    int64
	Commands *Commands
}

func newFrame(dt float64, index int64, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Index:     index,
		Commands:  commands,
	}
}

// Elapsed returns DeltaTime as a time.Duration.
func (f *Frame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
