// Package service wires the core engine packages (pixelcodec, adaptive,
// simplelsb, metrics, steganalysis, cipher) behind the interfaces the
// HTTP handlers depend on.
package service

import "github.com/kestrelvane/adaptive-image-stego/internal/models"

// SteganographyService defines embedding/extraction/capacity operations
// over a cover or stego image.
type SteganographyService interface {
	CalculateCapacity(imageData []byte, blockSize int, edgeThreshold float64) (*models.CapacityResult, error)
	EmbedMessage(req *models.EmbedRequest) (stego []byte, psnr float64, err error)
	ExtractMessage(req *models.ExtractRequest) (payload []byte, err error)
	EvaluateMetrics(coverData, stegoData []byte) (*models.MetricsResult, error)
	RunSteganalysis(coverData, stegoData []byte) (*models.SteganalysisResult, error)
}

// CryptographyService wraps the AES-CTR cipher collaborator behind a
// passphrase-based interface.
type CryptographyService interface {
	Encrypt(plaintext []byte, passphrase string) ([]byte, error)
	Decrypt(ciphertext []byte, passphrase string) ([]byte, error)
}
