package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func vecEq(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func vec4Eq(a, b mgl32.Vec4) bool {
	return a.Sub(b).Len() < eps
}

func matEq(a, b mgl32.Mat4) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestDefaultViewIsIdentity(t *testing.T) {
	c := New()
	got := c.ViewTransform()
	if !matEq(got, mgl32.Ident4()) {
		t.Fatalf("default view = %v, want identity", got)
	}
}

func TestForwardOneSecond(t *testing.T) {
	c := New(WithSpeed(5))
	c.OnFrame(1.0, KeyState{Forward: true})

	want := mgl32.Vec3{0, 0, 5}
	if got := c.Position(); !vecEq(got, want) {
		t.Fatalf("position = %v, want %v", got, want)
	}
}

func TestDisplacementMagnitude(t *testing.T) {
	const elapsed = 0.5
	for mask := 0; mask < 16; mask++ {
		keys := KeyState{
			Forward: mask&1 != 0,
			Back:    mask&2 != 0,
			Left:    mask&4 != 0,
			Right:   mask&8 != 0,
		}
		c := New()
		c.OnFrame(elapsed, keys)

		axial := keys.Forward != keys.Back
		lateral := keys.Left != keys.Right

		var want float32
		if axial || lateral {
			want = DefaultSpeed * elapsed
		}
		if got := c.Position().Len(); !near(got, want) {
			t.Errorf("keys %+v: displacement %v, want %v", keys, got, want)
		}
	}
}

func TestStrafeDirections(t *testing.T) {
	c := New()
	c.OnFrame(1, KeyState{Left: true})
	if got, want := c.Position(), (mgl32.Vec3{-5, 0, 0}); !vecEq(got, want) {
		t.Fatalf("strafe left: %v, want %v", got, want)
	}
	c.OnFrame(2, KeyState{Right: true})
	if got, want := c.Position(), (mgl32.Vec3{5, 0, 0}); !vecEq(got, want) {
		t.Fatalf("strafe right: %v, want %v", got, want)
	}
}

func TestOnFrameClearsKeys(t *testing.T) {
	c := New()
	c.OnFrame(0.1, KeyState{Forward: true, Left: true})
	if c.pressed.Any() {
		t.Fatalf("pressed keys not cleared: %+v", c.pressed)
	}

	c.OnFrame(0.1, KeyState{})
	if c.pressed != (KeyState{}) {
		t.Fatalf("idle frame left keys set: %+v", c.pressed)
	}
}

func TestIdleFrameKeepsPosition(t *testing.T) {
	start := mgl32.Vec3{1, 2, 3}
	c := New(WithPosition(start))
	c.OnFrame(1, KeyState{})
	if got := c.Position(); got != start {
		t.Fatalf("idle frame moved camera to %v", got)
	}
}

func TestOnFrameIgnoresBadElapsed(t *testing.T) {
	for _, elapsed := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		c := New()
		c.OnFrame(elapsed, KeyState{Forward: true})
		if got := c.Position(); got != (mgl32.Vec3{}) {
			t.Errorf("elapsed %v moved camera to %v", elapsed, got)
		}
	}
}

func TestFirstMouseSampleRebuildsBasis(t *testing.T) {
	c := New()
	c.OnMouse(640, 360)

	yaw, pitch := c.Orientation()
	if yaw != 0 || pitch != 0 {
		t.Fatalf("first sample rotated camera: yaw=%v pitch=%v", yaw, pitch)
	}

	// Zero angles rebuild to right +X, forward +Z and up u x n
	u, v, n := c.Basis()
	if !vecEq(u, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("u = %v", u)
	}
	if !vecEq(n, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("n = %v", n)
	}
	if want := u.Cross(n); !vecEq(v, want) || !vecEq(v, mgl32.Vec3{0, -1, 0}) {
		t.Errorf("v = %v, want %v", v, want)
	}
}

func TestZeroDeltaSampleKeepsView(t *testing.T) {
	c := New(WithPosition(mgl32.Vec3{1, 2, 3}))
	c.OnMouse(5, 5)
	before := c.ViewTransform()

	c.OnMouse(5, 5)
	if after := c.ViewTransform(); !matEq(after, before) {
		t.Fatalf("zero-delta sample changed view:\n%v\nwant\n%v", after, before)
	}
}

func TestRepeatedSampleHasNoDelta(t *testing.T) {
	c := New()
	c.OnMouse(10, 10)
	c.OnMouse(20, 5)
	yaw, pitch := c.Orientation()

	c.OnMouse(20, 5)
	gotYaw, gotPitch := c.Orientation()
	if gotYaw != yaw || gotPitch != pitch {
		t.Fatalf("identical sample changed angles: (%v, %v) -> (%v, %v)", yaw, pitch, gotYaw, gotPitch)
	}
}

func TestPitchClamped(t *testing.T) {
	c := New()
	c.OnMouse(0, 0)

	c.OnMouse(0, -1000) // cursor up
	if _, pitch := c.Orientation(); pitch != MaxPitch {
		t.Fatalf("pitch = %v, want %v", pitch, MaxPitch)
	}

	c.OnMouse(0, 5000) // cursor down
	if _, pitch := c.Orientation(); pitch != MinPitch {
		t.Fatalf("pitch = %v, want %v", pitch, MinPitch)
	}
}

func TestYawWrapsToOppositeBound(t *testing.T) {
	c := New()
	c.OnMouse(0, 0)

	c.OnMouse(359, 0)
	if yaw, _ := c.Orientation(); yaw != 359 {
		t.Fatalf("yaw = %v, want 359", yaw)
	}

	c.OnMouse(361, 0) // 361 degrees
	if yaw, _ := c.Orientation(); yaw != 0 {
		t.Fatalf("yaw = %v after overflow, want 0", yaw)
	}

	c.OnMouse(360, 0) // -1 degree
	if yaw, _ := c.Orientation(); yaw != 360 {
		t.Fatalf("yaw = %v after underflow, want 360", yaw)
	}
}

func TestYawQuarterTurn(t *testing.T) {
	c := New()
	c.OnMouse(0, 0)
	c.OnMouse(90, 0)

	u, v, n := c.Basis()
	if !vecEq(u, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("u = %v", u)
	}
	if !vecEq(n, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("n = %v", n)
	}
	if !vecEq(v, u.Cross(n)) {
		t.Errorf("v = %v, want u x n = %v", v, u.Cross(n))
	}

	c.OnFrame(1, KeyState{Forward: true})
	if got, want := c.Position(), (mgl32.Vec3{5, 0, 0}); !vecEq(got, want) {
		t.Fatalf("position = %v, want %v", got, want)
	}
}

func TestPitchTiltsForward(t *testing.T) {
	c := New()
	c.OnMouse(0, 0)
	c.OnMouse(0, -30)

	_, _, n := c.Basis()
	s, co := math.Sincos(math.Pi / 6)
	want := mgl32.Vec3{0, float32(-s), float32(co)}
	if !vecEq(n, want) {
		t.Fatalf("n = %v, want %v", n, want)
	}
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(42))

	x, y := 0.0, 0.0
	for i := 0; i < 1000; i++ {
		x += rng.Float64()*80 - 40
		y += rng.Float64()*80 - 40
		c.OnMouse(x, y)

		u, v, n := c.Basis()
		for _, axis := range []mgl32.Vec3{u, v, n} {
			if !near(axis.Len(), 1) {
				t.Fatalf("step %d: axis %v not unit length", i, axis)
			}
		}
		if d := u.Dot(v); math.Abs(float64(d)) > eps {
			t.Fatalf("step %d: u.v = %v", i, d)
		}
		if d := u.Dot(n); math.Abs(float64(d)) > eps {
			t.Fatalf("step %d: u.n = %v", i, d)
		}
		if d := v.Dot(n); math.Abs(float64(d)) > eps {
			t.Fatalf("step %d: v.n = %v", i, d)
		}

		yaw, pitch := c.Orientation()
		if pitch < MinPitch || pitch > MaxPitch {
			t.Fatalf("step %d: pitch %v out of range", i, pitch)
		}
		if yaw < MinYaw || yaw > MaxYaw {
			t.Fatalf("step %d: yaw %v out of range", i, yaw)
		}
	}
}

func TestViewTransformMovesEyeToOrigin(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}
	c := New(WithPosition(eye))
	c.OnMouse(0, 0)
	c.OnMouse(37, -12)

	got := c.ViewTransform().Mul4x1(eye.Vec4(1))
	if !vec4Eq(got, mgl32.Vec4{0, 0, 0, 1}) {
		t.Fatalf("view * eye = %v, want origin", got)
	}

	// A point one unit ahead lands on the camera-space +Z axis
	_, _, n := c.Basis()
	ahead := c.ViewTransform().Mul4x1(eye.Add(n).Vec4(1))
	if !vec4Eq(ahead, mgl32.Vec4{0, 0, 1, 1}) {
		t.Fatalf("view * (eye+n) = %v", ahead)
	}
}

func TestNonFiniteCursorIgnored(t *testing.T) {
	c := New()
	c.OnMouse(math.NaN(), 0)
	if c.mousePrimed {
		t.Fatalf("NaN sample primed the cursor")
	}
	c.OnMouse(5, 5)
	c.OnMouse(math.Inf(1), 5)
	if yaw, pitch := c.Orientation(); yaw != 0 || pitch != 0 {
		t.Fatalf("Inf sample rotated camera: yaw=%v pitch=%v", yaw, pitch)
	}
}

func TestResetMouseReprimes(t *testing.T) {
	c := New()
	c.OnMouse(0, 0)
	c.OnMouse(10, 0)

	c.ResetMouse()
	c.OnMouse(500, 500)
	if yaw, pitch := c.Orientation(); yaw != 10 || pitch != 0 {
		t.Fatalf("reprime sample rotated camera: yaw=%v pitch=%v", yaw, pitch)
	}
}

type fakeInput struct {
	keys KeyState
	x, y float64
}

func (f *fakeInput) Keys() KeyState            { return f.keys }
func (f *fakeInput) CursorPos() (x, y float64) { return f.x, f.y }

func TestUpdateAppliesMouseThenMovement(t *testing.T) {
	c := New()
	in := &fakeInput{keys: KeyState{Forward: true}, x: 100, y: 100}

	c.Update(1, in)
	if got, want := c.Position(), (mgl32.Vec3{0, 0, 5}); !vecEq(got, want) {
		t.Fatalf("first update position = %v, want %v", got, want)
	}

	// Turn a quarter to the right and move in the new forward direction
	in.x += 90
	c.Update(1, in)
	if got, want := c.Position(), (mgl32.Vec3{5, 0, 5}); !vecEq(got, want) {
		t.Fatalf("second update position = %v, want %v", got, want)
	}
}
