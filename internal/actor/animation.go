package actor

import "platformer/internal/physics"

// AnimationState is what the renderer should show. Selection is pure; playback is the renderer's job.
type AnimationState uint8

const (
	Standing AnimationState = iota
	Running
	Jumping
	Falling
)

var animationNames = [...]string{"standing", "running", "jumping", "falling"}

func (s AnimationState) String() string {
	if int(s) < len(animationNames) {
		return animationNames[s]
	}
	return "unknown"
}

// FrameDuration is how long each sprite frame is held, in seconds.
const FrameDuration = 0.1

// Animator tracks the current animation state, how long it has run, and which way the actor faces.
type Animator struct {
	State       AnimationState
	Timer       float32
	FacingRight bool
}

// NewAnimator returns a standing animator facing right.
func NewAnimator() Animator {
	return Animator{State: Standing, FacingRight: true}
}

// SelectState picks the state for this frame. A jump keeps its pose on the way down;
// a fall that did not start from a jump shows as falling unless the actor is running.
func SelectState(v physics.Vec2, moving bool, previous AnimationState) AnimationState {
	switch {
	case v.Y > 0 || (v.Y < 0 && previous == Jumping):
		return Jumping
	case moving:
		return Running
	case v.Y < 0:
		return Falling
	default:
		return Standing
	}
}

// Update advances the animator by dt. The timer restarts whenever the state changes.
func (a *Animator) Update(v physics.Vec2, moving bool, dt float32) {
	next := SelectState(v, moving, a.State)
	if next == a.State {
		a.Timer += dt
	} else {
		a.Timer = 0
	}
	a.State = next

	if v.X < 0 {
		a.FacingRight = false
	} else if v.X > 0 {
		a.FacingRight = true
	}
}

// KeyFrame returns the looping frame index for an animation of n frames.
func (a *Animator) KeyFrame(n int) int {
	if n <= 0 {
		return 0
	}
	return int(a.Timer/FrameDuration) % n
}
