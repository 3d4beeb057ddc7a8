// Package models holds the HTTP request/response shapes for the image
// steganography API.
package models

import "errors"

// Predefined errors surfaced by the service layer to handlers.
var (
	ErrInvalidImageFormat = errors.New("invalid image format: only PNG and JPEG covers are supported")
	ErrMissingCoverImage  = errors.New("cover image not provided")
	ErrMissingStegoImage  = errors.New("stego image not provided")
	ErrInvalidMethod      = errors.New("invalid embedding method, must be 'adaptive', 'simple', or 'simple-adaptive'")
	ErrInvalidParameters  = errors.New("block size and edge threshold must satisfy the engine's constraints")
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries a human-readable message plus arbitrary details.
type ErrorDetail struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// EmbedRequest is the parsed form of a POST /embed request.
type EmbedRequest struct {
	CoverImage    []byte
	Payload       []byte
	Method        string // "adaptive", "simple", or "simple-adaptive"
	Passphrase    string
	BlockSize     int
	EdgeThreshold float64
}

// ExtractRequest is the parsed form of a POST /extract request.
type ExtractRequest struct {
	StegoImage    []byte
	Method        string
	Passphrase    string
	BlockSize     int
	EdgeThreshold float64
}

// CapacityResult reports the adaptive and simple-LSB embedding capacity
// of an uploaded image, with and without the edge-adaptive smooth-region
// restriction.
type CapacityResult struct {
	AdaptiveBits        int     `json:"adaptive_bits"`
	AdaptiveBytes       int     `json:"adaptive_bytes"`
	AdaptiveBPP         float64 `json:"adaptive_bits_per_pixel"`
	SimpleLSBBytes      int     `json:"simple_lsb_bytes"`
	SimpleLSBAdaptBytes int     `json:"simple_lsb_adaptive_bytes"`
	Width               int     `json:"width"`
	Height              int     `json:"height"`
}

// MetricsResult is the JSON-reachable form of the §4.7 metric set.
type MetricsResult struct {
	MSE                float64 `json:"mse"`
	PSNR               float64 `json:"psnr"`
	EntropyCover       float64 `json:"entropy_cover"`
	EntropyStego       float64 `json:"entropy_stego"`
	HistogramDeviation float64 `json:"histogram_deviation"`
	CapacityBPP        float64 `json:"capacity_bits_per_pixel"`
}

// SteganalysisResult is the JSON-reachable form of comprehensive
// steganalysis over one or two images.
type SteganalysisResult struct {
	RS        RSSummary         `json:"rs_analysis"`
	ChiSquare ChiSquareSummary  `json:"chi_square_attack"`
	Histogram *HistogramSummary `json:"histogram_analysis,omitempty"`
}

// RSSummary mirrors steganalysis.RSResult's JSON-facing fields.
type RSSummary struct {
	EmbeddingRateEstimate float64 `json:"embedding_rate_estimate"`
	StegoDetected         bool    `json:"stego_detected"`
	TotalGroups           int     `json:"total_groups"`
}

// ChiSquareSummary mirrors steganalysis.ChiSquareResult's JSON-facing
// fields.
type ChiSquareSummary struct {
	Statistic     float64 `json:"chi_square_statistic"`
	CriticalValue float64 `json:"critical_value_95"`
	StegoDetected bool    `json:"stego_detected"`
	Confidence    float64 `json:"confidence_percent"`
}

// HistogramSummary mirrors steganalysis.HistogramResult's JSON-facing
// fields; only present when both a cover and a stego image were
// supplied.
type HistogramSummary struct {
	ChiSquare     float64 `json:"chi_square"`
	KSStatistic   float64 `json:"ks_statistic"`
	Bhattacharyya float64 `json:"bhattacharyya"`
	Detectable    bool    `json:"detectable"`
}
