// HighGUI implementation of the control and render surfaces
package highgui

import (
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"interactive-image-processing/internal/controls"
	"interactive-image-processing/internal/preview"
)

// Window hosts the preview image and all trackbars in a single HighGUI
// window, implementing both preview.ControlSurface and preview.RenderSurface.
type Window struct {
	win       *gocv.Window
	trackbars map[string]*gocv.Trackbar
	defs      []controls.Definition
	logger    *logrus.Logger
}

// NewWindow creates the window and one trackbar per control definition,
// positioned at the control's default.
func NewWindow(title string, defs []controls.Definition, logger *logrus.Logger) *Window {
	win := gocv.NewWindow(title)
	w := &Window{
		win:       win,
		trackbars: make(map[string]*gocv.Trackbar, len(defs)),
		defs:      defs,
		logger:    logger,
	}
	for _, d := range defs {
		tb := win.CreateTrackbar(d.Name, d.Max)
		if d.Min > 0 {
			tb.SetMin(d.Min)
		}
		tb.SetPos(d.Default)
		w.trackbars[d.Name] = tb
	}
	logger.WithFields(logrus.Fields{
		"title":    title,
		"controls": len(defs),
	}).Debug("Control window created")
	return w
}

// Snapshot reads every trackbar once. A destroyed window surfaces as
// preview.ErrSurfaceClosed: either the visibility check fails, or the cgo
// trackbar read panics and is recovered here at the boundary.
func (w *Window) Snapshot() (state controls.State, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = preview.ErrSurfaceClosed
		}
	}()

	if !w.Visible() {
		return state, preview.ErrSurfaceClosed
	}

	values := make(map[string]int, len(w.trackbars))
	for name, tb := range w.trackbars {
		values[name] = tb.GetPos()
	}
	return controls.FromValues(w.defs, values), nil
}

// Set writes a value back to a named trackbar. Writes to a window mid-close
// are swallowed; the next Snapshot reports the closure.
func (w *Window) Set(name string, value int) {
	defer func() {
		_ = recover()
	}()
	if tb, ok := w.trackbars[name]; ok {
		tb.SetPos(value)
	}
}

// Visible reports whether the window is still open and on screen.
func (w *Window) Visible() bool {
	return w.win.IsOpen() && w.win.GetWindowProperty(gocv.WindowPropertyVisible) >= 1
}

// Show paints a frame into the window.
func (w *Window) Show(img gocv.Mat) {
	w.win.IMShow(img)
}

// WaitKey flushes pending paints and polls up to msec for a key press.
func (w *Window) WaitKey(msec int) int {
	return w.win.WaitKey(msec)
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
