package input

import "platformer/internal/physics"

// Snapshot is the player's intent for one frame, sampled once before the physics step.
type Snapshot struct {
	Left        bool
	Right       bool
	Jump        bool
	ToggleDebug bool
}

// Intent collapses Left/Right into one horizontal intent. Right wins when both are held,
// matching the order the keyboard is polled in.
func (s Snapshot) Intent() physics.Intent {
	switch {
	case s.Right:
		return physics.IntentRight
	case s.Left:
		return physics.IntentLeft
	default:
		return physics.IntentNone
	}
}

// Moving reports whether any horizontal key is held.
func (s Snapshot) Moving() bool {
	return s.Left || s.Right
}
