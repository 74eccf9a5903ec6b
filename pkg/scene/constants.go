package scene

// Projection defaults
const (
	DefaultFOV  = 90.0 // vertical, degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Spinning cube defaults
const (
	DefaultSpinSpeed = 1.0 // radians per second
	DefaultCubeScale = 0.5
)

// Grid defaults
const (
	DefaultGridSize    = 9
	DefaultGridSpacing = 2.0
)
