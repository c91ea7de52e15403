// Pure per-step image transforms over OpenCV Mats.
//
// Every function returns a new Mat and never mutates its input; callers own
// the returned Mat and must Close it.
package transform

import (
	"image"

	"gocv.io/x/gocv"
)

// Largest Gaussian kernel the blur slider can reach.
const maxBlurKernel = 51

// AdjustBrightnessContrast applies output = saturate(input*alpha + beta)
// where alpha = contrast/100 and beta = brightness-100, so a control value
// of 100 on either slider is the identity.
func AdjustBrightnessContrast(src gocv.Mat, brightness, contrast int) gocv.Mat {
	alpha := float32(contrast) / 100.0
	beta := float32(brightness - 100)
	dst := gocv.NewMat()
	src.ConvertToWithParams(&dst, gocv.MatTypeCV8U, alpha, beta)
	return dst
}

// Rotate maps slider choices to quarter-turn rotations: 1 is 90 degrees
// clockwise, 2 is 180, 3 is 90 counter-clockwise. Any other choice passes
// the image through unchanged.
func Rotate(src gocv.Mat, choice int) gocv.Mat {
	var code gocv.RotateFlag
	switch choice {
	case 1:
		code = gocv.Rotate90Clockwise
	case 2:
		code = gocv.Rotate180Clockwise
	case 3:
		code = gocv.Rotate90CounterClockwise
	default:
		return src.Clone()
	}
	dst := gocv.NewMat()
	gocv.Rotate(src, &dst, code)
	return dst
}

// Flip mirrors the image: 1 is horizontal, 2 is vertical. Any other choice
// passes the image through unchanged.
func Flip(src gocv.Mat, choice int) gocv.Mat {
	var flipCode int
	switch choice {
	case 1:
		flipCode = 1
	case 2:
		flipCode = 0
	default:
		return src.Clone()
	}
	dst := gocv.NewMat()
	gocv.Flip(src, &dst, flipCode)
	return dst
}

// Resize scales to the target dimensions, flooring both at 1. Area averaging
// is used whenever either dimension shrinks, cubic interpolation otherwise.
func Resize(src gocv.Mat, width, height int) gocv.Mat {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == src.Cols() && height == src.Rows() {
		return src.Clone()
	}
	interp := gocv.InterpolationCubic
	if width < src.Cols() || height < src.Rows() {
		interp = gocv.InterpolationArea
	}
	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, interp)
	return dst
}

// BlurKernel derives the Gaussian kernel size from the blur slider value.
// The result is always odd and capped at maxBlurKernel; intensity 0 yields 1.
func BlurKernel(intensity int) int {
	if intensity < 0 {
		intensity = 0
	}
	k := 1 + 2*(intensity/4)
	if k > maxBlurKernel {
		k = maxBlurKernel
	}
	return k
}

// Blur applies a square Gaussian blur with sigma derived from the kernel
// size. A kernel of 1 is a no-op.
func Blur(src gocv.Mat, intensity int) gocv.Mat {
	k := BlurKernel(intensity)
	if k <= 1 {
		return src.Clone()
	}
	dst := gocv.NewMat()
	gocv.GaussianBlur(src, &dst, image.Point{X: k, Y: k}, 0, 0, gocv.BorderDefault)
	return dst
}

// Grayscale converts a 3-channel image to gray and immediately re-expands it
// to 3 channels for uniform display handling. Already-gray input passes
// through unchanged.
func Grayscale(src gocv.Mat) gocv.Mat {
	if src.Channels() != 3 {
		return src.Clone()
	}
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	dst := gocv.NewMat()
	gocv.CvtColor(gray, &dst, gocv.ColorGrayToBGR)
	return dst
}

// DetectEdges runs Canny edge detection. The two thresholds are sorted so
// the smaller becomes the hysteresis low threshold, making the inputs
// order-independent. The result is single-channel and stays that way.
func DetectEdges(src gocv.Mat, threshold1, threshold2 int) gocv.Mat {
	low, high := threshold1, threshold2
	if low > high {
		low, high = high, low
	}

	var gray gocv.Mat
	if src.Channels() == 3 {
		gray = gocv.NewMat()
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	} else {
		gray = src.Clone()
	}
	defer gray.Close()

	edges := gocv.NewMat()
	gocv.Canny(gray, &edges, float32(low), float32(high))
	return edges
}
