// Package steganalysis implements the standard attacks used to evaluate
// embedding robustness: RS analysis, a chi-square pairs-of-values
// attack, and histogram-based detection.
package steganalysis

import "github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"

// RSResult reports the outcome of an RS (regular/singular) analysis.
type RSResult struct {
	RM, SM, RN, SN    float64
	DR, DS            float64
	EmbeddingRate     float64
	StegoDetected     bool
	TotalGroups       int
}

func flipLSB(v uint8) uint8 { return v ^ 1 }

func smoothness(group []uint8) int {
	if len(group) < 2 {
		return 0
	}
	var v int
	for i := 1; i < len(group); i++ {
		d := int(group[i]) - int(group[i-1])
		if d < 0 {
			d = -d
		}
		v += d
	}
	return v
}

// classify compares the smoothness of a group before and after masking:
// 'S' if masking increases variation, 'R' if it decreases, 'U' if equal.
func classify(group, masked []uint8) byte {
	before := smoothness(group)
	after := smoothness(masked)
	switch {
	case after > before:
		return 'S'
	case after < before:
		return 'R'
	default:
		return 'U'
	}
}

// RSAnalyze runs RS analysis on a flattened gray plane in non-overlapping
// groups of maskSize pixels (the service layer uses 2). maskSize must be
// positive.
func RSAnalyze(g *pixelcodec.GrayPlane, maskSize int) RSResult {
	pixels := g.Pix
	var rm, sm, rn, sn, total int

	for i := 0; i+maskSize <= len(pixels); i += maskSize {
		group := pixels[i : i+maskSize]

		posMasked := make([]uint8, maskSize)
		for j, v := range group {
			posMasked[j] = flipLSB(v)
		}
		switch classify(group, posMasked) {
		case 'R':
			rm++
		case 'S':
			sm++
		}

		negMasked := make([]uint8, maskSize)
		copy(negMasked, group)
		for j := 0; j < maskSize; j += 2 {
			negMasked[j] = flipLSB(negMasked[j])
		}
		switch classify(group, negMasked) {
		case 'R':
			rn++
		case 'S':
			sn++
		}

		total++
	}

	var rmN, smN, rnN, snN float64
	if total > 0 {
		rmN = float64(rm) / float64(total)
		smN = float64(sm) / float64(total)
		rnN = float64(rn) / float64(total)
		snN = float64(sn) / float64(total)
	}

	dR := rmN - rnN
	dS := smN - snN
	denom := absF(dR) + absF(dS)
	rate := 0.0
	if denom > 0.001 {
		rate = absF(dR) / denom
	}

	return RSResult{
		RM: rmN, SM: smN, RN: rnN, SN: snN,
		DR: dR, DS: dS,
		EmbeddingRate: rate,
		StegoDetected: rate > 0.1,
		TotalGroups:   total,
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
