package tetris

// Status is everything the HUD shows.
type Status struct {
	Score      int
	Message    string
	RevealHint string
	GoalHint   string
	Lines      int
}

// Display receives HUD updates. StatusChanged is only called when a field
// differs from the previous call; NextChanged is called on every spawn.
type Display interface {
	StatusChanged(Status)
	NextChanged(next Matrix)
}

// Navigator is told, once per game, that the lifetime line goal was reached.
type Navigator interface {
	Advance()
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func()

// Advance calls f().
func (f NavigatorFunc) Advance() { f() }
