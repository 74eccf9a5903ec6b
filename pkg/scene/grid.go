package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Cell is one cube of the demo field
type Cell struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Grid lays out size*size cubes on the XZ plane, centered on the origin.
// Colors run from red to blue across X and pick up green across Z so each
// direction is recognizable while flying.
func Grid(size int, spacing float32) []Cell {
	if size <= 0 {
		return nil
	}

	cells := make([]Cell, 0, size*size)
	offset := float32(size-1) * spacing / 2

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			var tx, tz float32
			if size > 1 {
				tx = float32(i) / float32(size-1)
				tz = float32(j) / float32(size-1)
			}

			cells = append(cells, Cell{
				Position: mgl32.Vec3{float32(i)*spacing - offset, 0, float32(j)*spacing - offset},
				Color:    mgl32.Vec3{1 - tx, 0.3 + 0.7*tz, tx},
			})
		}
	}

	return cells
}
