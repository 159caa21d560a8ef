package loop

// Commands buffers work that must run after every system of the current
// frame has executed.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len reports how many deferred calls are pending.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs all deferred calls in queue order and resets the buffer.
// Calls deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
