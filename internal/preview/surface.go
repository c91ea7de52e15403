package preview

import (
	"errors"

	"gocv.io/x/gocv"

	"interactive-image-processing/internal/controls"
)

// ErrSurfaceClosed reports that the control surface has been destroyed,
// normally by the user closing the window. The loop treats it as a clean
// shutdown request, not a failure.
var ErrSurfaceClosed = errors.New("control surface closed")

// ControlSurface is the slider host the loop reads once per frame.
type ControlSurface interface {
	// Snapshot reads every control's current value. It returns
	// ErrSurfaceClosed once the surface has been destroyed.
	Snapshot() (controls.State, error)
	// Set writes a value back to a named control so corrections become
	// visible to the user.
	Set(name string, value int)
	// Visible reports whether the surface is still on screen.
	Visible() bool
}

// RenderSurface paints frames and polls for key presses.
type RenderSurface interface {
	Show(img gocv.Mat)
	// WaitKey paints pending frames and waits up to msec for a key press,
	// returning the key code or a negative value on timeout.
	WaitKey(msec int) int
}

// Saver persists the processed image on the save command.
type Saver interface {
	SaveImage(img gocv.Mat, path string) error
}
