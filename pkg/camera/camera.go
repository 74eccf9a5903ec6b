// Package camera implements a first-person free camera: WASD-style movement
// along the view basis and mouse-look built from yaw and pitch quaternions.
//
// The camera never talks to a window. Callers hand it a KeyState and cursor
// coordinates each frame and read back a view matrix.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// World axes. The default basis equals them.
var (
	worldRight   = mgl32.Vec3{1, 0, 0}
	worldUp      = mgl32.Vec3{0, 1, 0}
	worldForward = mgl32.Vec3{0, 0, 1}
)

// Camera keeps an eye position and an orthonormal view basis.
// u points right, v up and n forward.
type Camera struct {
	position mgl32.Vec3

	u mgl32.Vec3
	v mgl32.Vec3
	n mgl32.Vec3

	// Accumulated angles in degrees
	yaw   float32
	pitch float32

	speed float32

	// Keys captured for the current frame, cleared by OnFrame
	pressed KeyState

	// Last cursor sample. Unset until the first OnMouse call.
	mousePos    mgl64.Vec2
	mousePrimed bool
}

// Option configures a Camera at construction
type Option func(*Camera)

// WithSpeed sets the movement speed in world units per second
func WithSpeed(speed float32) Option {
	return func(c *Camera) {
		c.speed = speed
	}
}

// WithPosition sets the initial eye position
func WithPosition(position mgl32.Vec3) Option {
	return func(c *Camera) {
		c.position = position
	}
}

// New creates a camera at the origin looking down +Z
func New(opts ...Option) *Camera {
	c := &Camera{
		u:     worldRight,
		v:     worldUp,
		n:     worldForward,
		speed: DefaultSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnFrame moves the camera along the direction selected by keys.
// Opposite keys cancel out and diagonals are normalized so every non-zero
// direction moves at the same speed.
func (c *Camera) OnFrame(elapsed float32, keys KeyState) {
	c.pressed = keys
	defer func() { c.pressed = KeyState{} }()

	// NaN fails the comparison as well
	if !keys.Any() || !(elapsed > 0) || math.IsInf(float64(elapsed), 1) {
		return
	}

	var direction mgl32.Vec3
	if c.pressed.Forward {
		direction = direction.Add(c.n)
	}
	if c.pressed.Back {
		direction = direction.Sub(c.n)
	}
	if c.pressed.Left {
		direction = direction.Sub(c.u)
	}
	if c.pressed.Right {
		direction = direction.Add(c.u)
	}

	if direction.Len() > 0 {
		direction = direction.Normalize()
	}

	velocity := direction.Mul(c.speed)
	c.position = c.position.Add(velocity.Mul(elapsed))
}

// OnMouse turns the camera by the cursor movement since the previous sample.
// The first sample primes the cursor cache, so its delta is zero, but the
// basis is still rebuilt from the current angles. Moving the cursor up raises
// the pitch.
func (c *Camera) OnMouse(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}

	pos := mgl64.Vec2{x, y}
	if !c.mousePrimed {
		c.mousePos = pos
		c.mousePrimed = true
	}

	delta := mgl64.Vec2{x - c.mousePos.X(), c.mousePos.Y() - y}
	c.mousePos = pos

	c.pitch = clampPitch(c.pitch + float32(delta.Y()))
	c.yaw = CyclicClamp(c.yaw+float32(delta.X()), MinYaw, MaxYaw)

	c.rebuildBasis()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Update samples in once and applies it: orientation first, then movement.
func (c *Camera) Update(elapsed float32, in Input) {
	c.OnMouse(in.CursorPos())
	c.OnFrame(elapsed, in.Keys())
}

// rebuildBasis derives u, v and n from yaw and pitch. Yaw turns the right
// axis about world up, pitch then turns the forward axis about the new right
// axis, so the camera never rolls.
func (c *Camera) rebuildBasis() {
	yawRotation := mgl32.QuatRotate(mgl32.DegToRad(c.yaw), worldUp)
	u := rotate(yawRotation, worldRight).Normalize()

	pitchRotation := mgl32.QuatRotate(mgl32.DegToRad(c.pitch), u)
	n := rotate(pitchRotation, u.Cross(worldUp)).Normalize()

	v := u.Cross(n).Normalize()

	c.u, c.v, c.n = u, v, n
}

// rotate returns q * p * q^-1 where p is the pure quaternion of vec.
// q must be a unit quaternion, so its conjugate is its inverse.
func rotate(q mgl32.Quat, vec mgl32.Vec3) mgl32.Vec3 {
	p := mgl32.Quat{W: 0, V: vec}
	return q.Mul(p).Mul(q.Conjugate()).V
}

// ViewTransform returns the world-to-camera matrix. Its rows are u, v and n,
// each extended by the negated projection of the eye onto that axis.
func (c *Camera) ViewTransform() mgl32.Mat4 {
	return mgl32.Mat4FromRows(
		c.u.Vec4(-c.u.Dot(c.position)),
		c.v.Vec4(-c.v.Dot(c.position)),
		c.n.Vec4(-c.n.Dot(c.position)),
		mgl32.Vec4{0, 0, 0, 1},
	)
}

// ResetMouse forgets the last cursor sample so the next OnMouse call primes
// it again. Call it whenever the cursor is captured or released.
func (c *Camera) ResetMouse() {
	c.mousePrimed = false
}

// Position returns the eye position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Basis returns the right, up and forward axes
func (c *Camera) Basis() (u, v, n mgl32.Vec3) {
	return c.u, c.v, c.n
}

// Orientation returns yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}
