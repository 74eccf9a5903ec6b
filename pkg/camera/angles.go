package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CyclicClamp keeps value inside [lo, hi] by jumping to the opposite bound
// once it leaves the range. A value below lo becomes hi and a value above hi
// becomes lo; the overshoot is discarded.
func CyclicClamp(value, lo, hi float32) float32 {
	if value < lo {
		return hi
	}
	if value > hi {
		return lo
	}
	return value
}

// clampPitch constrains pitch to [MinPitch, MaxPitch]
func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}
