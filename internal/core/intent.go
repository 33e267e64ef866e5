package core

// Intent is the normalized control snapshot for one simulation tick.
// The platform layer (keyboard and mouse handlers) writes it between ticks;
// the simulation only reads it, so within one tick every decision sees the
// same state. There is exactly one writer per field and ticks never overlap,
// so no locking is needed.
type Intent struct {
	// Directional movement flags. Opposite flags cancel out; diagonal
	// combinations are additive.
	Left, Right, Up, Down bool

	// Fire requests a shot. The game applies its own cooldown.
	Fire bool

	// Pause toggles the pause state. Edge-triggered: set for one tick
	// per key press.
	Pause bool

	// PointerActive indicates the pointer (mouse) currently drives the
	// ship. While set, Pointer overrides the directional flags.
	PointerActive bool

	// Pointer is the pursuit target in logical playfield coordinates.
	Pointer Vec2
}

// Axis resolves the directional flags into a unit-step axis pair.
// Each component is -1, 0 or +1.
func (in Intent) Axis() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// ClearTransient resets the per-tick flags while preserving the pointer
// state, which is positional rather than edge-triggered.
func (in *Intent) ClearTransient() {
	in.Left = false
	in.Right = false
	in.Up = false
	in.Down = false
	in.Fire = false
	in.Pause = false
}
