package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interactive-image-processing/internal/controls"
)

func TestApplyGrayscaleOnSolidGray(t *testing.T) {
	src := solid(100, 100, 128)
	defer src.Close()

	s := controls.DefaultState(100, 100)
	s.Grayscale = 1

	out := Apply(src, s)
	defer out.Close()

	require.Equal(t, 100, out.Cols())
	require.Equal(t, 100, out.Rows())
	require.Equal(t, 3, out.Channels())
	v := out.GetVecbAt(50, 50)
	assert.Equal(t, uint8(128), v[0])
	assert.Equal(t, uint8(128), v[1])
	assert.Equal(t, uint8(128), v[2])
}

func TestApplyDefaultsPreserveImage(t *testing.T) {
	src := marked(40, 60)
	defer src.Close()

	out := Apply(src, controls.DefaultState(60, 40))
	defer out.Close()

	assert.Equal(t, src.ToBytes(), out.ToBytes())
}

func TestApplyEdgeOutputIsSingleChannel(t *testing.T) {
	src := marked(50, 50)
	defer src.Close()

	s := controls.DefaultState(50, 50)
	s.Edges = 1

	out := Apply(src, s)
	defer out.Close()

	assert.Equal(t, 1, out.Channels())
	assert.Equal(t, 50, out.Cols())
	assert.Equal(t, 50, out.Rows())
}

func TestApplyGrayscaleThenEdges(t *testing.T) {
	// Edge detection must cope with the already-gray working image the
	// grayscale step leaves behind.
	src := marked(50, 50)
	defer src.Close()

	s := controls.DefaultState(50, 50)
	s.Grayscale = 1
	s.Edges = 1

	out := Apply(src, s)
	defer out.Close()
	assert.Equal(t, 1, out.Channels())
}

func TestApplyResizeUsesStateDimensions(t *testing.T) {
	src := solid(20, 20, 99)
	defer src.Close()

	s := controls.DefaultState(20, 20)
	s.Width = 50
	s.Height = 25

	out := Apply(src, s)
	defer out.Close()
	assert.Equal(t, 50, out.Cols())
	assert.Equal(t, 25, out.Rows())
}

func TestApplyRotateSwapsDimensions(t *testing.T) {
	src := solid(10, 30, 99)
	defer src.Close()

	s := controls.DefaultState(30, 10)
	s.Rotate = 1
	// Match the rotated dimensions so the resize step stays out of the way.
	s.Width = 10
	s.Height = 30

	out := Apply(src, s)
	defer out.Close()
	assert.Equal(t, 10, out.Cols())
	assert.Equal(t, 30, out.Rows())
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := marked(30, 30)
	defer src.Close()
	before := src.ToBytes()

	s := controls.DefaultState(30, 30)
	s.Brightness = 180
	s.Blur = 40

	out := Apply(src, s)
	out.Close()

	assert.Equal(t, before, src.ToBytes())
}
