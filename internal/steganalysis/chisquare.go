package steganalysis

import "github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"

// ChiSquareCriticalValue95 is the approximate chi-square critical value
// at 95% confidence for 127 degrees of freedom.
const ChiSquareCriticalValue95 = 154.3

// ChiSquareResult reports the outcome of a pairs-of-values attack.
type ChiSquareResult struct {
	Statistic     float64
	CriticalValue float64
	PairsTested   int
	StegoDetected bool
	Confidence    float64
}

// ChiSquarePoV runs the chi-square pairs-of-values attack: for each pair
// (2i, 2i+1) with a nonzero count, it adds the chi-square deviation of
// both frequencies from their mean, and reports StegoDetected when the
// total exceeds ChiSquareCriticalValue95.
func ChiSquarePoV(g *pixelcodec.GrayPlane) ChiSquareResult {
	var freq [256]int
	for _, v := range g.Pix {
		freq[v]++
	}

	var chi float64
	pairsTested := 0
	for i := 0; i < 128; i++ {
		n0 := float64(freq[2*i])
		n1 := float64(freq[2*i+1])
		expected := (n0 + n1) / 2.0
		if expected > 0 {
			chi += (n0 - expected) * (n0 - expected) / expected
			chi += (n1 - expected) * (n1 - expected) / expected
			pairsTested++
		}
	}

	confidence := (chi / ChiSquareCriticalValue95) * 95
	if confidence > 99.9 {
		confidence = 99.9
	}

	return ChiSquareResult{
		Statistic:     chi,
		CriticalValue: ChiSquareCriticalValue95,
		PairsTested:   pairsTested,
		StegoDetected: chi > ChiSquareCriticalValue95,
		Confidence:    confidence,
	}
}
