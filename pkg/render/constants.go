package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key bindings
const (
	KeyForward       = glfw.KeyW
	KeyBack          = glfw.KeyS
	KeyLeft          = glfw.KeyA
	KeyRight         = glfw.KeyD
	KeyEscape        = glfw.KeyEscape
	KeyToggleCapture = glfw.KeyC
)

// Action constant for key events
const Press = glfw.Press

// Window defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Free Camera"
)

// Background color
var clearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// Initial eye position: behind the grid, slightly raised, looking down +Z
var defaultEye = mgl32.Vec3{0, 1.5, -12}
