package imageio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func testLoader() *Loader {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewLoader(logger)
}

func TestLoadImageRejectsUnsupportedFormat(t *testing.T) {
	mat, err := testLoader().LoadImage("notes.txt")
	defer mat.Close()
	assert.ErrorContains(t, err, "unsupported image format")
}

func TestLoadImageMissingFile(t *testing.T) {
	mat, err := testLoader().LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	defer mat.Close()
	assert.ErrorContains(t, err, "failed to load image")
}

func TestSaveImageRejectsEmpty(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	err := testLoader().SaveImage(empty, "out.png")
	assert.ErrorContains(t, err, "empty image")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	loader := testLoader()
	path := filepath.Join(t.TempDir(), "roundtrip.png")

	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 20, 30, 0), 8, 12, gocv.MatTypeCV8UC3)
	defer src.Close()
	require.NoError(t, loader.SaveImage(src, path))

	loaded, err := loader.LoadImage(path)
	require.NoError(t, err)
	defer loaded.Close()

	assert.Equal(t, 12, loaded.Cols())
	assert.Equal(t, 8, loaded.Rows())
	assert.Equal(t, 3, loaded.Channels())
	assert.Equal(t, src.ToBytes(), loaded.ToBytes())
}
