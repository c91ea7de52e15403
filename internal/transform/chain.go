package transform

import (
	"gocv.io/x/gocv"

	"interactive-image-processing/internal/controls"
)

// Apply runs the fixed transform chain against a fresh copy of src:
// brightness/contrast, rotate, flip, resize, blur, grayscale, edge
// detection. The source is never mutated; each frame derives its output from
// the original, so parameter changes never accumulate across frames.
//
// The returned Mat is owned by the caller. It is 3-channel unless edge
// detection ran, which leaves it single-channel.
func Apply(src gocv.Mat, s controls.State) gocv.Mat {
	out := AdjustBrightnessContrast(src, s.Brightness, s.Contrast)

	if s.Rotate != 0 {
		out = replace(out, Rotate(out, s.Rotate))
	}
	if s.Flip != 0 {
		out = replace(out, Flip(out, s.Flip))
	}
	if s.Width != out.Cols() || s.Height != out.Rows() {
		out = replace(out, Resize(out, s.Width, s.Height))
	}
	if s.Blur > 0 {
		out = replace(out, Blur(out, s.Blur))
	}
	if s.Grayscale != 0 {
		out = replace(out, Grayscale(out))
	}
	if s.Edges != 0 {
		out = replace(out, DetectEdges(out, s.Threshold1, s.Threshold2))
	}
	return out
}

func replace(old, next gocv.Mat) gocv.Mat {
	old.Close()
	return next
}
