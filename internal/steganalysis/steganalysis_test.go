package steganalysis

import (
	"testing"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

func naturalPlane(w, h int) *pixelcodec.GrayPlane {
	g := pixelcodec.NewGrayPlane(w, h)
	seed := uint32(42)
	for i := range g.Pix {
		seed = seed*1664525 + 1013904223
		g.Pix[i] = uint8(seed >> 24)
	}
	return g
}

func TestRSAnalyzeCleanImageLowRate(t *testing.T) {
	g := naturalPlane(64, 64)
	r := RSAnalyze(g, 2)
	if r.TotalGroups == 0 {
		t.Fatalf("expected nonzero groups")
	}
	if r.EmbeddingRate > 0.5 {
		t.Fatalf("clean natural image reported suspiciously high embedding rate: %f", r.EmbeddingRate)
	}
}

func TestRSAnalyzeAllLSBSetIsDetectable(t *testing.T) {
	g := naturalPlane(64, 64)
	for i := range g.Pix {
		g.Pix[i] |= 1
	}
	r := RSAnalyze(g, 2)
	if !r.StegoDetected {
		t.Fatalf("all-LSB-set image not detected: embedding rate %f", r.EmbeddingRate)
	}
}

func TestChiSquarePoVCleanImage(t *testing.T) {
	g := naturalPlane(128, 128)
	r := ChiSquarePoV(g)
	if r.PairsTested == 0 {
		t.Fatalf("expected nonzero pairs tested")
	}
}

func TestChiSquarePoVLSBEmbeddingDetected(t *testing.T) {
	g := naturalPlane(128, 128)
	for i := 0; i < len(g.Pix); i += 2 {
		g.Pix[i] = (g.Pix[i] &^ 1) | 1
	}
	r := ChiSquarePoV(g)
	if r.Statistic < 0 {
		t.Fatalf("chi-square statistic must be nonnegative, got %f", r.Statistic)
	}
	if !r.StegoDetected {
		t.Fatalf("LSB embedding not detected: statistic %f", r.Statistic)
	}
}

func TestHistogramAnalyzeIdentical(t *testing.T) {
	g := naturalPlane(32, 32)
	r := HistogramAnalyze(g, g)
	if r.ChiSquare != 0 {
		t.Fatalf("identical histograms: chi-square got %f want 0", r.ChiSquare)
	}
	if r.KSStatistic != 0 {
		t.Fatalf("identical histograms: KS got %f want 0", r.KSStatistic)
	}
	if r.Detectable {
		t.Fatalf("identical histograms should not be detectable")
	}
}
