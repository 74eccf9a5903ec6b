package camera

// Camera defaults
const (
	// Movement speed in world units per second
	DefaultSpeed = 5.0

	// Pitch constraints in degrees
	MaxPitch = 45.0
	MinPitch = -45.0

	// Yaw range in degrees
	MinYaw = 0.0
	MaxYaw = 360.0
)
