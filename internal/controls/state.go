// Slider-backed control state for the preview loop
package controls

// Control names as shown on the control surface.
const (
	NameLockAspect  = "Lock Aspect"
	NameFreeStretch = "Free Stretch"
	NameWidth       = "Width"
	NameHeight      = "Height"
	NameGrayscale   = "Grayscale"
	NameBlur        = "Blur"
	NameEdges       = "Edges"
	NameThreshold1  = "Edge Threshold 1"
	NameThreshold2  = "Edge Threshold 2"
	NameBrightness  = "Brightness"
	NameContrast    = "Contrast"
	NameRotate      = "Rotate"
	NameFlip        = "Flip"
	NameKeepSize    = "Keep Size"
)

// Width/height sliders reach 3x the source dimension, never less than this.
const minDimensionCap = 50

// Definition describes one control for surface creation and clamping.
type Definition struct {
	Name    string
	Min     int
	Max     int
	Default int
}

// State is the per-frame snapshot of every control. All values are plain
// ints straight off the sliders; flags are 0/1.
type State struct {
	LockAspect  int
	FreeStretch int
	Width       int
	Height      int
	Grayscale   int
	Blur        int
	Edges       int
	Threshold1  int
	Threshold2  int
	Brightness  int
	Contrast    int
	Rotate      int
	Flip        int
	KeepSize    int
}

// Definitions returns the full control set for a source image of the given
// dimensions, in surface creation order.
func Definitions(srcWidth, srcHeight int) []Definition {
	return []Definition{
		{Name: NameLockAspect, Min: 0, Max: 1, Default: 1},
		{Name: NameFreeStretch, Min: 0, Max: 1, Default: 0},
		{Name: NameWidth, Min: 1, Max: DimensionCap(srcWidth), Default: srcWidth},
		{Name: NameHeight, Min: 1, Max: DimensionCap(srcHeight), Default: srcHeight},
		{Name: NameGrayscale, Min: 0, Max: 1, Default: 0},
		{Name: NameBlur, Min: 0, Max: 100, Default: 0},
		{Name: NameEdges, Min: 0, Max: 1, Default: 0},
		{Name: NameThreshold1, Min: 0, Max: 255, Default: 50},
		{Name: NameThreshold2, Min: 0, Max: 255, Default: 150},
		{Name: NameBrightness, Min: 0, Max: 200, Default: 100},
		{Name: NameContrast, Min: 0, Max: 200, Default: 100},
		{Name: NameRotate, Min: 0, Max: 3, Default: 0},
		{Name: NameFlip, Min: 0, Max: 2, Default: 0},
		{Name: NameKeepSize, Min: 0, Max: 1, Default: 1},
	}
}

// DimensionCap returns the slider maximum for one source dimension.
func DimensionCap(dim int) int {
	limit := 3 * dim
	if limit < minDimensionCap {
		limit = minDimensionCap
	}
	return limit
}

// DefaultState returns the documented control defaults for a source image.
func DefaultState(srcWidth, srcHeight int) State {
	return FromValues(Definitions(srcWidth, srcHeight), nil)
}

// FromValues builds a clamped State from raw surface values. Controls missing
// from the map fall back to their defaults.
func FromValues(defs []Definition, values map[string]int) State {
	var s State
	for _, d := range defs {
		v, ok := values[d.Name]
		if !ok {
			v = d.Default
		}
		s.set(d.Name, clamp(v, d.Min, d.Max))
	}
	return s
}

// Values returns the snapshot as a name-to-value map, the inverse of
// FromValues.
func (s State) Values() map[string]int {
	return map[string]int{
		NameLockAspect:  s.LockAspect,
		NameFreeStretch: s.FreeStretch,
		NameWidth:       s.Width,
		NameHeight:      s.Height,
		NameGrayscale:   s.Grayscale,
		NameBlur:        s.Blur,
		NameEdges:       s.Edges,
		NameThreshold1:  s.Threshold1,
		NameThreshold2:  s.Threshold2,
		NameBrightness:  s.Brightness,
		NameContrast:    s.Contrast,
		NameRotate:      s.Rotate,
		NameFlip:        s.Flip,
		NameKeepSize:    s.KeepSize,
	}
}

func (s *State) set(name string, value int) {
	switch name {
	case NameLockAspect:
		s.LockAspect = value
	case NameFreeStretch:
		s.FreeStretch = value
	case NameWidth:
		s.Width = value
	case NameHeight:
		s.Height = value
	case NameGrayscale:
		s.Grayscale = value
	case NameBlur:
		s.Blur = value
	case NameEdges:
		s.Edges = value
	case NameThreshold1:
		s.Threshold1 = value
	case NameThreshold2:
		s.Threshold2 = value
	case NameBrightness:
		s.Brightness = value
	case NameContrast:
		s.Contrast = value
	case NameRotate:
		s.Rotate = value
	case NameFlip:
		s.Flip = value
	case NameKeepSize:
		s.KeepSize = value
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
