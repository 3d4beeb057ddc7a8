package service

import (
	"bytes"
	"errors"

	"github.com/kestrelvane/adaptive-image-stego/internal/adaptive"
	"github.com/kestrelvane/adaptive-image-stego/internal/metrics"
	"github.com/kestrelvane/adaptive-image-stego/internal/models"
	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
	"github.com/kestrelvane/adaptive-image-stego/internal/simplelsb"
	"github.com/kestrelvane/adaptive-image-stego/internal/steganalysis"
)

type steganographyService struct {
	crypto CryptographyService
}

// NewSteganographyService constructs the default SteganographyService,
// wiring the adaptive engine, the simple-LSB baseline, and the optional
// cipher collaborator behind one interface.
func NewSteganographyService(crypto CryptographyService) SteganographyService {
	return &steganographyService{crypto: crypto}
}

// paramsOrDefault builds adaptive.Params from request fields, falling
// back to DefaultParams for an unset block size (<=0) or threshold
// (<0); callers that want to pin T=0 explicitly pass edgeThreshold=0.
// The result is validated, surfacing a caller-supplied block size or
// threshold the engine cannot honor as models.ErrInvalidParameters.
func paramsOrDefault(blockSize int, edgeThreshold float64) (adaptive.Params, error) {
	p := adaptive.DefaultParams()
	if blockSize > 0 {
		p.BlockSize = blockSize
	}
	if edgeThreshold >= 0 {
		p.EdgeThreshold = edgeThreshold
	}
	if err := p.Validate(); err != nil {
		return p, models.ErrInvalidParameters
	}
	return p, nil
}

func (s *steganographyService) CalculateCapacity(imageData []byte, blockSize int, edgeThreshold float64) (*models.CapacityResult, error) {
	img, err := pixelcodec.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, models.ErrInvalidImageFormat
	}

	params, err := paramsOrDefault(blockSize, edgeThreshold)
	if err != nil {
		return nil, err
	}
	adaptiveBits, err := adaptive.Capacity(img, params)
	if err != nil {
		return nil, err
	}

	return &models.CapacityResult{
		AdaptiveBits:        adaptiveBits,
		AdaptiveBytes:       adaptiveBits / 8,
		AdaptiveBPP:         float64(adaptiveBits) / float64(img.Width*img.Height),
		SimpleLSBBytes:      simplelsb.Capacity(img),
		SimpleLSBAdaptBytes: simplelsb.CapacityAdaptive(img),
		Width:               img.Width,
		Height:              img.Height,
	}, nil
}

func (s *steganographyService) EmbedMessage(req *models.EmbedRequest) ([]byte, float64, error) {
	if len(req.CoverImage) == 0 {
		return nil, 0, models.ErrMissingCoverImage
	}

	cover, err := pixelcodec.Decode(bytes.NewReader(req.CoverImage))
	if err != nil {
		return nil, 0, models.ErrInvalidImageFormat
	}

	payload := req.Payload
	if req.Passphrase != "" {
		payload, err = s.crypto.Encrypt(payload, req.Passphrase)
		if err != nil {
			return nil, 0, err
		}
	}

	var stego *pixelcodec.Image
	switch req.Method {
	case "", "adaptive":
		params, perr := paramsOrDefault(req.BlockSize, req.EdgeThreshold)
		if perr != nil {
			return nil, 0, perr
		}
		stego, _, err = adaptive.Encode(cover, payload, params)
	case "simple":
		stego, err = simplelsb.Encode(cover, payload)
	case "simple-adaptive":
		stego, err = simplelsb.EncodeAdaptive(cover, payload)
	default:
		return nil, 0, models.ErrInvalidMethod
	}
	if err != nil {
		return nil, 0, err
	}

	coverGray := pixelcodec.ToGrayBT601(cover)
	stegoGray := pixelcodec.ToGrayBT601(stego)
	psnr := metrics.PSNR(metrics.MSE(coverGray, stegoGray))

	var buf bytes.Buffer
	if err := pixelcodec.Encode(&buf, stego); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), psnr, nil
}

func (s *steganographyService) ExtractMessage(req *models.ExtractRequest) ([]byte, error) {
	if len(req.StegoImage) == 0 {
		return nil, models.ErrMissingStegoImage
	}

	stego, err := pixelcodec.Decode(bytes.NewReader(req.StegoImage))
	if err != nil {
		return nil, models.ErrInvalidImageFormat
	}

	var payload []byte
	switch req.Method {
	case "", "adaptive":
		params, perr := paramsOrDefault(req.BlockSize, req.EdgeThreshold)
		if perr != nil {
			return nil, perr
		}
		payload, _, err = adaptive.Decode(stego, params)
	case "simple":
		payload, err = simplelsb.Decode(stego)
	case "simple-adaptive":
		payload, err = simplelsb.DecodeAdaptive(stego)
	default:
		return nil, models.ErrInvalidMethod
	}
	if err != nil && !errors.Is(err, adaptive.ErrHeaderCorrupt) {
		return nil, err
	}

	if req.Passphrase != "" {
		payload, err = s.crypto.Decrypt(payload, req.Passphrase)
		if err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func (s *steganographyService) EvaluateMetrics(coverData, stegoData []byte) (*models.MetricsResult, error) {
	cover, err := pixelcodec.Decode(bytes.NewReader(coverData))
	if err != nil {
		return nil, models.ErrInvalidImageFormat
	}
	stego, err := pixelcodec.Decode(bytes.NewReader(stegoData))
	if err != nil {
		return nil, models.ErrInvalidImageFormat
	}

	coverGray := pixelcodec.ToGrayBT601(cover)
	stegoGray := pixelcodec.ToGrayBT601(stego)
	mse := metrics.MSE(coverGray, stegoGray)

	// Capacity is supplementary: an image too narrow for the adaptive
	// header (< 48 columns) still gets MSE/PSNR/entropy/histogram
	// figures, just with CapacityBPP left at zero.
	var capacityBPP float64
	if capacityBits, err := adaptive.Capacity(stego, adaptive.DefaultParams()); err == nil {
		capacityBPP = metrics.CapacityBitsPerPixel(capacityBits, stego.Height, stego.Width)
	}

	return &models.MetricsResult{
		MSE:                mse,
		PSNR:               metrics.PSNR(mse),
		EntropyCover:       metrics.Entropy(coverGray),
		EntropyStego:       metrics.Entropy(stegoGray),
		HistogramDeviation: metrics.HistogramDeviation(coverGray, stegoGray),
		CapacityBPP:        capacityBPP,
	}, nil
}

func (s *steganographyService) RunSteganalysis(coverData, stegoData []byte) (*models.SteganalysisResult, error) {
	if len(stegoData) == 0 {
		return nil, models.ErrMissingStegoImage
	}
	stego, err := pixelcodec.Decode(bytes.NewReader(stegoData))
	if err != nil {
		return nil, models.ErrInvalidImageFormat
	}
	stegoGray := pixelcodec.ToGrayBT601(stego)

	rs := steganalysis.RSAnalyze(stegoGray, 2)
	chi := steganalysis.ChiSquarePoV(stegoGray)

	result := &models.SteganalysisResult{
		RS: models.RSSummary{
			EmbeddingRateEstimate: rs.EmbeddingRate,
			StegoDetected:         rs.StegoDetected,
			TotalGroups:           rs.TotalGroups,
		},
		ChiSquare: models.ChiSquareSummary{
			Statistic:     chi.Statistic,
			CriticalValue: chi.CriticalValue,
			StegoDetected: chi.StegoDetected,
			Confidence:    chi.Confidence,
		},
	}

	if len(coverData) > 0 {
		cover, err := pixelcodec.Decode(bytes.NewReader(coverData))
		if err == nil {
			coverGray := pixelcodec.ToGrayBT601(cover)
			hist := steganalysis.HistogramAnalyze(coverGray, stegoGray)
			result.Histogram = &models.HistogramSummary{
				ChiSquare:     hist.ChiSquare,
				KSStatistic:   hist.KSStatistic,
				Bhattacharyya: hist.Bhattacharyya,
				Detectable:    hist.Detectable,
			}
		}
	}

	return result, nil
}
