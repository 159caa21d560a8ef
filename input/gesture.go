package input

import "math"

// SwipeThreshold is the distance in pixels a touch must travel on either
// axis before it counts as a swipe rather than a tap.
const SwipeThreshold = 30

// Classify maps a touch displacement to an intent. Swipes move along their
// dominant axis (ties go vertical): right or left, down for a soft drop, up
// to rotate. Taps rotate.
func Classify(dx, dy float64) Intent {
	if math.Abs(dx) <= SwipeThreshold && math.Abs(dy) <= SwipeThreshold {
		return Rotate
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return MoveRight
		}
		return MoveLeft
	}
	if dy > 0 {
		return SoftDrop
	}
	return Rotate
}
