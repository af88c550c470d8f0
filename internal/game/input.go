package game

import "github.com/go-gl/mathgl/mgl64"

// pointerDeadZone is the fraction of the player radius inside which a pointer
// target no longer steers the player.
const pointerDeadZone = 0.6

// InputState is the per-frame movement intent read from the host: held
// directional keys plus an optional pointer/touch target in arena coordinates.
type InputState struct {
	Up, Down, Left, Right bool
	Target                *mgl64.Vec2
}

// ResolveDirection turns raw intent into a unit direction (or zero).
// Directional keys win over pointer steering.
func ResolveDirection(in InputState, pos mgl64.Vec2, playerRadius float64) mgl64.Vec2 {
	var key mgl64.Vec2
	if in.Up {
		key[1]--
	}
	if in.Down {
		key[1]++
	}
	if in.Left {
		key[0]--
	}
	if in.Right {
		key[0]++
	}
	if key[0] != 0 || key[1] != 0 {
		return normalize(key)
	}
	if in.Target == nil {
		return mgl64.Vec2{}
	}
	to := in.Target.Sub(pos)
	d := length(to)
	if d <= playerRadius*pointerDeadZone {
		return mgl64.Vec2{}
	}
	return to.Mul(1 / d)
}
