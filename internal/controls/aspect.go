package controls

import "math"

// ResolveAspect recomputes the target height from the target width using the
// source aspect ratio. It only acts when Free Stretch is off and Lock Aspect
// is on; otherwise the state is returned untouched.
//
// Width takes precedence on the way in; if the derived height would exceed
// its slider cap, the cap wins and the width is re-derived from it. This is
// a one-step correction, not an iterative solver. The second return value
// reports whether the state changed and must be written back to the surface.
func ResolveAspect(s State, srcWidth, srcHeight int) (State, bool) {
	if s.FreeStretch != 0 || s.LockAspect == 0 {
		return s, false
	}

	aspect := float64(srcWidth) / float64(srcHeight)
	width := s.Width
	height := int(math.Round(float64(width) / aspect))
	if height < 1 {
		height = 1
	}

	if maxHeight := DimensionCap(srcHeight); height > maxHeight {
		height = maxHeight
		width = int(math.Round(float64(height) * aspect))
		width = clamp(width, 1, DimensionCap(srcWidth))
	}

	if width == s.Width && height == s.Height {
		return s, false
	}
	s.Width = width
	s.Height = height
	return s, true
}
