package controls

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAspectDerivesHeightFromWidth(t *testing.T) {
	s := DefaultState(200, 100)
	s.Width = 400

	got, changed := ResolveAspect(s, 200, 100)
	assert.True(t, changed)
	assert.Equal(t, 400, got.Width)
	assert.Equal(t, 200, got.Height)
}

func TestResolveAspectNoChangeAtDefaults(t *testing.T) {
	s := DefaultState(200, 100)
	got, changed := ResolveAspect(s, 200, 100)
	assert.False(t, changed)
	assert.Equal(t, s, got)
}

func TestResolveAspectHeightCapWins(t *testing.T) {
	// Portrait source: aspect 0.5, height cap 600. Width 400 would need
	// height 800, so the cap wins and width is re-derived.
	s := DefaultState(100, 200)
	s.Width = 400

	got, changed := ResolveAspect(s, 100, 200)
	assert.True(t, changed)
	assert.Equal(t, 600, got.Height)
	assert.Equal(t, 300, got.Width)
}

func TestResolveAspectFloorsHeightAtOne(t *testing.T) {
	// Very wide source: width 1 derives height round(1/8) = 0, floored to 1.
	s := DefaultState(800, 100)
	s.Width = 1

	got, _ := ResolveAspect(s, 800, 100)
	assert.Equal(t, 1, got.Height)
}

func TestResolveAspectFreeStretchPassesThrough(t *testing.T) {
	s := DefaultState(200, 100)
	s.FreeStretch = 1
	s.Width = 400
	s.Height = 77

	got, changed := ResolveAspect(s, 200, 100)
	assert.False(t, changed)
	assert.Equal(t, 77, got.Height)
}

func TestResolveAspectLockOffPassesThrough(t *testing.T) {
	s := DefaultState(200, 100)
	s.LockAspect = 0
	s.Width = 400
	s.Height = 77

	_, changed := ResolveAspect(s, 200, 100)
	assert.False(t, changed)
}

func TestResolveAspectWithinOnePixel(t *testing.T) {
	const srcW, srcH = 640, 480
	aspect := float64(srcW) / float64(srcH)

	for width := 1; width <= DimensionCap(srcW); width++ {
		s := DefaultState(srcW, srcH)
		s.Width = width
		got, _ := ResolveAspect(s, srcW, srcH)

		diff := math.Abs(float64(got.Width) - math.Round(float64(got.Height)*aspect))
		assert.LessOrEqualf(t, diff, 1.0, "width %d resolved to %dx%d", width, got.Width, got.Height)
	}
}
