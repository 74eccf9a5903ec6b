package camera

// KeyState is a snapshot of the movement keys taken once per frame
type KeyState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Any reports whether at least one movement key is held
func (k KeyState) Any() bool {
	return k.Forward || k.Back || k.Left || k.Right
}

// Input supplies the per-frame samples the camera consumes.
// Implementations poll a window; tests use plain structs.
type Input interface {
	// Keys returns the current state of the movement keys
	Keys() KeyState
	// CursorPos returns the absolute cursor position
	CursorPos() (x, y float64)
}
