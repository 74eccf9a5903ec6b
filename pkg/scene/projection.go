// Package scene holds the pure math the demo renderer feeds to its shaders:
// the perspective projection, per-cube model transforms and the cube layout.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection is a perspective projection looking down +Z, matching the
// camera's forward axis. View-space depth maps to NDC z in [-1, 1].
type Projection struct {
	FOV  float32 // vertical field of view in degrees
	Near float32
	Far  float32
}

// DefaultProjection returns the demo's projection settings
func DefaultProjection() Projection {
	return Projection{FOV: DefaultFOV, Near: DefaultNear, Far: DefaultFar}
}

// Matrix builds the projection for the given width/height ratio.
// A non-positive aspect is treated as square.
func (p Projection) Matrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}

	f := float32(1 / math.Tan(float64(mgl32.DegToRad(p.FOV/2))))
	depth := p.Far - p.Near

	return mgl32.Mat4FromRows(
		mgl32.Vec4{f / aspect, 0, 0, 0},
		mgl32.Vec4{0, f, 0, 0},
		mgl32.Vec4{0, 0, (p.Far + p.Near) / depth, -2 * p.Far * p.Near / depth},
		mgl32.Vec4{0, 0, 1, 0},
	)
}

// FlipY mirrors clip-space y. A basis whose up axis points toward world -Y
// renders upside down without it.
func FlipY(m mgl32.Mat4) mgl32.Mat4 {
	return mgl32.Scale3D(1, -1, 1).Mul4(m)
}
