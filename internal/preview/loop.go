// Interactive preview frame loop
package preview

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"interactive-image-processing/internal/compositor"
	"interactive-image-processing/internal/controls"
	"interactive-image-processing/internal/transform"
)

// LoopState is the lifecycle of the preview loop.
type LoopState int

const (
	StateRunning LoopState = iota
	StateClosing
	StateStopped
)

// DefaultSavePath is where the save command writes the processed image,
// relative to the working directory. Repeated saves overwrite it.
const DefaultSavePath = "processed_output.png"

const (
	keyEscape = 27
	keyQuit   = 'q'
	keyReset  = 'r'
	keySave   = 's'

	// Bounded per-frame key poll; this is the loop's only suspension
	// point and also what keeps the surface painted and responsive.
	frameDelayMs = 30
)

// Loop drives the interactive pipeline: read controls, resolve the aspect
// lock, run the transform chain against a fresh copy of the source, composite
// and paint, then poll for a command key. Strictly single-threaded.
type Loop struct {
	surface ControlSurface
	render  RenderSurface
	saver   Saver
	logger  *logrus.Logger

	source    gocv.Mat
	srcWidth  int
	srcHeight int
	defs      []controls.Definition

	// Chain output of the most recent frame, kept only for the save
	// command. Unpadded and uncropped.
	lastProcessed gocv.Mat

	state    LoopState
	savePath string
}

// NewLoop wires a loop over an already-loaded source image. The source Mat
// remains owned by the caller and must stay open for the life of the loop.
func NewLoop(source gocv.Mat, surface ControlSurface, render RenderSurface, saver Saver, logger *logrus.Logger) *Loop {
	return &Loop{
		surface:       surface,
		render:        render,
		saver:         saver,
		logger:        logger,
		source:        source,
		srcWidth:      source.Cols(),
		srcHeight:     source.Rows(),
		defs:          controls.Definitions(source.Cols(), source.Rows()),
		lastProcessed: gocv.NewMat(),
		state:         StateRunning,
		savePath:      DefaultSavePath,
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() LoopState {
	return l.state
}

// Run executes frames until the loop leaves StateRunning, then releases the
// retained buffers. A surface closure ends the loop cleanly; any other frame
// failure is returned as-is (fail fast).
func (l *Loop) Run() error {
	defer l.release()

	l.logger.WithFields(logrus.Fields{
		"width":  l.srcWidth,
		"height": l.srcHeight,
	}).Info("Preview loop started")

	for l.state == StateRunning {
		if err := l.frame(); err != nil {
			return err
		}
	}

	l.logger.Info("Preview loop stopped")
	return nil
}

func (l *Loop) frame() error {
	snap, err := l.surface.Snapshot()
	if err != nil {
		if errors.Is(err, ErrSurfaceClosed) {
			l.logger.Debug("Control surface closed, shutting down")
			l.state = StateClosing
			return nil
		}
		return err
	}

	resolved, corrected := controls.ResolveAspect(snap, l.srcWidth, l.srcHeight)
	if corrected {
		l.surface.Set(controls.NameWidth, resolved.Width)
		l.surface.Set(controls.NameHeight, resolved.Height)
	}

	processed := transform.Apply(l.source, resolved)
	if !l.lastProcessed.Empty() {
		l.lastProcessed.Close()
	}
	l.lastProcessed = processed

	frame := processed
	var canvas gocv.Mat
	hasCanvas := false
	if resolved.KeepSize != 0 {
		canvas = compositor.FitToCanvas(processed, l.srcWidth, l.srcHeight)
		frame = canvas
		hasCanvas = true
	}

	l.render.Show(frame)
	key := l.render.WaitKey(frameDelayMs)
	if hasCanvas {
		canvas.Close()
	}

	switch key {
	case keyEscape, keyQuit:
		l.logger.Debug("Quit key pressed")
		l.state = StateClosing
	case keyReset:
		l.resetControls()
	case keySave:
		l.save()
	}

	if l.state == StateRunning && !l.surface.Visible() {
		l.logger.Debug("Control surface no longer visible, shutting down")
		l.state = StateClosing
	}
	return nil
}

// resetControls writes every control's documented default back to the
// surface. The source image is untouched; the next frame re-reads the
// restored values.
func (l *Loop) resetControls() {
	for _, d := range l.defs {
		l.surface.Set(d.Name, d.Default)
	}
	l.logger.Info("Controls reset to defaults")
}

func (l *Loop) save() {
	if l.lastProcessed.Empty() {
		return
	}
	if err := l.saver.SaveImage(l.lastProcessed, l.savePath); err != nil {
		l.logger.WithError(err).Error("Failed to save processed image")
	}
}

func (l *Loop) release() {
	if !l.lastProcessed.Empty() {
		l.lastProcessed.Close()
	}
	l.state = StateStopped
}
