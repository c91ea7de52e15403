// Size-stable preview compositing
package compositor

import (
	"image"

	"gocv.io/x/gocv"
)

// FitToCanvas places img on a width x height canvas: axes that overflow are
// center-cropped, axes that underflow are center-padded with black. The
// canvas takes its Mat type from img, so single-channel edge output composes
// onto a single-channel canvas. The input is never mutated; the caller owns
// the returned Mat.
func FitToCanvas(img gocv.Mat, width, height int) gocv.Mat {
	if img.Cols() == width && img.Rows() == height {
		return img.Clone()
	}

	cropW := min(img.Cols(), width)
	cropH := min(img.Rows(), height)
	srcX := (img.Cols() - cropW) / 2
	srcY := (img.Rows() - cropH) / 2
	src := img.Region(image.Rect(srcX, srcY, srcX+cropW, srcY+cropH))
	defer src.Close()

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, img.Type())
	dstX := (width - cropW) / 2
	dstY := (height - cropH) / 2
	dst := canvas.Region(image.Rect(dstX, dstY, dstX+cropW, dstY+cropH))
	src.CopyTo(&dst)
	dst.Close()

	return canvas
}
