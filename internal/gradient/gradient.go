// Package gradient computes the Sobel edge-magnitude map used by the
// pixel selector to score blocks, over an LSB-stable grayscale plane so
// that encoder and decoder agree after embedding has modified low bits.
package gradient

import (
	"math"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

// Map is an H*W nonnegative gradient-magnitude plane.
type Map struct {
	Width, Height int
	Values        []float64
}

// At returns the magnitude at (x, y).
func (m *Map) At(x, y int) float64 {
	return m.Values[y*m.Width+x]
}

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// Compute masks every channel of img with &0xFE, converts to BT.601 gray,
// and returns the 3x3 Sobel magnitude map with zero-padded borders.
func Compute(img *pixelcodec.Image) *Map {
	masked := img.Clone()
	for i := range masked.Pix {
		masked.Pix[i] &= 0xFE
	}
	gray := pixelcodec.ToGrayBT601(masked)
	return ComputeFromGray(gray)
}

// ComputeFromGray runs the Sobel kernel directly over an already-gray
// plane, LSB-masking it first.
func ComputeFromGray(gray *pixelcodec.GrayPlane) *Map {
	w, h := gray.Width, gray.Height
	masked := make([]float64, w*h)
	for i, v := range gray.Pix {
		masked[i] = float64(v & 0xFE)
	}
	sample := func(x, y int) float64 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return masked[y*w+x]
	}

	out := &Map{Width: w, Height: h, Values: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					s := sample(x+kx, y+ky)
					gx += sobelX[ky+1][kx+1] * s
					gy += sobelY[ky+1][kx+1] * s
				}
			}
			out.Values[y*w+x] = math.Sqrt(gx*gx + gy*gy)
		}
	}
	return out
}

// Mean returns the arithmetic mean of every value in the map.
func Mean(m *Map) float64 {
	if len(m.Values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.Values {
		sum += v
	}
	return sum / float64(len(m.Values))
}

// BlockMean returns the mean of the B*B sub-region with top-left corner
// (row, col).
func BlockMean(m *Map, row, col, size int) float64 {
	var sum float64
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			sum += m.At(col+j, row+i)
		}
	}
	return sum / float64(size*size)
}
