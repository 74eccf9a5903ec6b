package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func ndcDepth(m mgl32.Mat4, z float32) float32 {
	clip := m.Mul4x1(mgl32.Vec4{0, 0, z, 1})
	return clip.Z() / clip.W()
}

func TestProjectionDepthRange(t *testing.T) {
	p := DefaultProjection()
	m := p.Matrix(4.0 / 3.0)

	if got := ndcDepth(m, p.Near); !near(got, -1) {
		t.Errorf("near plane maps to %v, want -1", got)
	}
	if got := ndcDepth(m, p.Far); !near(got, 1) {
		t.Errorf("far plane maps to %v, want 1", got)
	}
}

func TestProjectionFieldOfView(t *testing.T) {
	// With a 90 degree FOV a point at 45 degrees up lands on the top edge
	m := Projection{FOV: 90, Near: 0.1, Far: 100}.Matrix(1)
	clip := m.Mul4x1(mgl32.Vec4{0, 5, 5, 1})
	if got := clip.Y() / clip.W(); !near(got, 1) {
		t.Fatalf("ndc y = %v, want 1", got)
	}
}

func TestProjectionAspectScalesX(t *testing.T) {
	p := DefaultProjection()
	square := p.Matrix(1)
	wide := p.Matrix(2)

	if got, want := wide.At(0, 0), square.At(0, 0)/2; !near(got, want) {
		t.Errorf("x scale = %v, want %v", got, want)
	}
	if wide.At(1, 1) != square.At(1, 1) {
		t.Errorf("aspect changed the y scale")
	}
	if p.Matrix(0) != square {
		t.Errorf("zero aspect should fall back to square")
	}
}

func TestFlipYMirrorsVertical(t *testing.T) {
	p := DefaultProjection()
	m := p.Matrix(1.5)
	flipped := FlipY(m)

	point := mgl32.Vec4{1, 2, 5, 1}
	a := m.Mul4x1(point)
	b := flipped.Mul4x1(point)
	if !near(b.Y(), -a.Y()) {
		t.Errorf("flipped y = %v, want %v", b.Y(), -a.Y())
	}
	if !near(b.X(), a.X()) || !near(b.Z(), a.Z()) || !near(b.W(), a.W()) {
		t.Errorf("flip touched other components: %v vs %v", b, a)
	}
}
