package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGridIsCentered(t *testing.T) {
	cells := Grid(3, 2)
	if len(cells) != 9 {
		t.Fatalf("len = %d, want 9", len(cells))
	}

	var sum mgl32.Vec3
	for _, c := range cells {
		sum = sum.Add(c.Position)
		if c.Position.Y() != 0 {
			t.Errorf("cell %v off the ground plane", c.Position)
		}
	}
	if sum.Len() > 1e-5 {
		t.Errorf("grid not centered, sum = %v", sum)
	}

	if got, want := cells[0].Position, (mgl32.Vec3{-2, 0, -2}); got != want {
		t.Errorf("first cell = %v, want %v", got, want)
	}
}

func TestGridDegenerateSizes(t *testing.T) {
	if cells := Grid(0, 1); cells != nil {
		t.Errorf("Grid(0) = %v, want nil", cells)
	}

	cells := Grid(1, 5)
	if len(cells) != 1 || cells[0].Position != (mgl32.Vec3{}) {
		t.Errorf("Grid(1) = %v", cells)
	}
}
