// Package metrics computes image-quality metrics used to evaluate a
// stego image against its cover: MSE, PSNR, Shannon entropy, histogram
// deviation, and embedding capacity.
package metrics

import (
	"math"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

const histogramEpsilon = 1e-10

// MSE returns the mean squared error between two equally-sized gray
// planes.
func MSE(a, b *pixelcodec.GrayPlane) float64 {
	var sum float64
	n := len(a.Pix)
	for i := 0; i < n; i++ {
		d := float64(a.Pix[i]) - float64(b.Pix[i])
		sum += d * d
	}
	return sum / float64(n)
}

// PSNR returns the peak signal-to-noise ratio in dB for a given MSE;
// +Inf when mse is zero.
func PSNR(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}

// Histogram returns the 256-bin gray-level frequency count.
func Histogram(g *pixelcodec.GrayPlane) [256]int {
	var h [256]int
	for _, v := range g.Pix {
		h[v]++
	}
	return h
}

// Entropy returns the Shannon entropy, in bits, of the gray-level
// histogram. Zero-count bins are skipped.
func Entropy(g *pixelcodec.GrayPlane) float64 {
	hist := Histogram(g)
	n := float64(len(g.Pix))
	var e float64
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		e -= p * math.Log2(p)
	}
	return e
}

// HistogramDeviation returns the chi-square distance between the
// normalized histograms of a and b.
func HistogramDeviation(a, b *pixelcodec.GrayPlane) float64 {
	ha, hb := Histogram(a), Histogram(b)
	na, nb := float64(len(a.Pix)), float64(len(b.Pix))

	var chi float64
	for i := 0; i < 256; i++ {
		p := float64(ha[i]) / na
		q := float64(hb[i]) / nb
		d := p - q
		chi += (d * d) / (p + q + histogramEpsilon)
	}
	return chi
}

// CapacityBitsPerPixel returns embedded bits per pixel for an H*W image.
func CapacityBitsPerPixel(embeddedBits, height, width int) float64 {
	return float64(embeddedBits) / float64(height*width)
}
