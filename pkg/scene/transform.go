package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spin animates a model rotating about its Y and Z axes at once
type Spin struct {
	Angle       float32 // radians, kept in [0, 2π)
	Speed       float32 // radians per second
	Scale       float32
	Translation mgl32.Vec3
}

// NewSpin returns a spin with the demo defaults
func NewSpin() *Spin {
	return &Spin{
		Speed: DefaultSpinSpeed,
		Scale: DefaultCubeScale,
	}
}

// Advance moves the angle forward by Speed*elapsed, wrapping at 2π
func (s *Spin) Advance(elapsed float32) {
	const fullTurn = 2 * math.Pi

	angle := math.Mod(float64(s.Angle)+float64(s.Speed)*float64(elapsed), fullTurn)
	if angle < 0 {
		angle += fullTurn
	}
	s.Angle = float32(angle)
}

// Matrix returns translation * rotZ * rotY * scale
func (s *Spin) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(s.Translation.Elem()).
		Mul4(mgl32.HomogRotate3DZ(s.Angle)).
		Mul4(mgl32.HomogRotate3DY(s.Angle)).
		Mul4(mgl32.Scale3D(s.Scale, s.Scale, s.Scale))
}
