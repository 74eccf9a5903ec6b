package render

import (
	"github.com/leterax/go-freecam/internal/openglhelper"
	"github.com/leterax/go-freecam/pkg/camera"
)

// windowInput polls a window for the camera's per-frame samples
type windowInput struct {
	window *openglhelper.Window
}

var _ camera.Input = windowInput{}

// Keys reads the movement bindings from the window
func (in windowInput) Keys() camera.KeyState {
	return camera.KeyState{
		Forward: in.window.KeyPressed(KeyForward),
		Back:    in.window.KeyPressed(KeyBack),
		Left:    in.window.KeyPressed(KeyLeft),
		Right:   in.window.KeyPressed(KeyRight),
	}
}

// CursorPos returns the window's cursor position
func (in windowInput) CursorPos() (x, y float64) {
	return in.window.CursorPos()
}
