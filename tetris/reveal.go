package tetris

import (
	"fmt"
	"strings"
)

// Placeholder is shown while no fragment has been revealed.
const Placeholder = "6 words"

// DefaultFragments is the message revealed one fragment per milestone.
var DefaultFragments = []string{
	" Hi Bam💝",
	"I Love You.",
	"Wait lang ha, may 2nd page pa",
	"12 ka lines gub-a",
}

// Reveal tracks how much of an ordered list of fragments is visible.
type Reveal struct {
	fragments []string
	count     int
}

// NewReveal creates a reveal over a copy of fragments with nothing shown.
func NewReveal(fragments []string) *Reveal {
	return &Reveal{fragments: append([]string(nil), fragments...)}
}

// Advance shows one more fragment. It reports false once everything is shown.
func (r *Reveal) Advance() bool {
	if r.count >= len(r.fragments) {
		return false
	}
	r.count++
	return true
}

// Count returns how many fragments are shown.
func (r *Reveal) Count() int { return r.count }

// Len returns the total number of fragments.
func (r *Reveal) Len() int { return len(r.fragments) }

// Reset hides every fragment.
func (r *Reveal) Reset() { r.count = 0 }

// Text joins the shown fragments with line breaks, or returns Placeholder.
func (r *Reveal) Text() string {
	if r.count == 0 {
		return Placeholder
	}
	return strings.Join(r.fragments[:r.count], "\n")
}

// Revealed returns a copy of the shown fragments.
func (r *Reveal) Revealed() []string {
	return append([]string(nil), r.fragments[:r.count]...)
}

// RevealHint describes how many lines unlock the next fragment.
func RevealHint(threshold int) string {
	suffix := ""
	if threshold > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("Next letter after %d line%s", threshold, suffix)
}

// GoalHint describes the lifetime line goal.
func GoalHint(goal int) string {
	return fmt.Sprintf("Next Page after %d lines", goal)
}
