package steganalysis

import (
	"math"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

const histogramEpsilon = 1e-10

// HistogramResult reports chi-square distance, KS statistic, and
// Bhattacharyya distance between a cover and stego histogram.
type HistogramResult struct {
	ChiSquare     float64
	KSStatistic   float64
	Bhattacharyya float64
	Detectable    bool
}

// HistogramAnalyze compares the 256-bin gray histograms of cover and
// stego, independent of internal/metrics' own chi-square distance
// (separate module, same formula, grounded on a different attack class).
func HistogramAnalyze(cover, stego *pixelcodec.GrayPlane) HistogramResult {
	var hc, hs [256]int
	for _, v := range cover.Pix {
		hc[v]++
	}
	for _, v := range stego.Pix {
		hs[v]++
	}
	nc, ns := float64(len(cover.Pix)), float64(len(stego.Pix))

	var chi, ks, bhat float64
	var cumC, cumS float64
	for i := 0; i < 256; i++ {
		p := float64(hc[i]) / nc
		q := float64(hs[i]) / ns

		d := p - q
		chi += (d * d) / (p + q + histogramEpsilon)

		cumC += p
		cumS += q
		if diff := math.Abs(cumC - cumS); diff > ks {
			ks = diff
		}

		bhat += math.Sqrt(p * q)
	}
	bhattacharyya := -math.Log(bhat + histogramEpsilon)

	return HistogramResult{
		ChiSquare:     chi,
		KSStatistic:   ks,
		Bhattacharyya: bhattacharyya,
		Detectable:    chi > 0.01 || ks > 0.05,
	}
}
