package simview

import (
	"github.com/gogpu/gg"
)

// State is one body's kinematic snapshot, supplied fresh each frame by
// the physics host. Angle and AngularVel are in radians and radians per
// physics step, matching the step the interpolation fraction refers to.
type State struct {
	Pos        gg.Vec2
	Vel        gg.Vec2
	Angle      float64
	AngularVel float64
}

// At extrapolates the rendered pose a fraction f of a physics step past
// the snapshot: position Pos + Vel*f, angle Angle + AngularVel*f.
// At(0) returns the snapshot pose exactly.
func (s State) At(f float64) (gg.Vec2, float64) {
	return s.Pos.Add(s.Vel.Mul(f)), s.Angle + s.AngularVel*f
}
