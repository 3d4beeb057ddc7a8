// Package handlers implements the gin HTTP surface over the
// steganography service.
package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kestrelvane/adaptive-image-stego/internal/models"
	"github.com/kestrelvane/adaptive-image-stego/internal/service"
)

// Handlers holds the service dependencies the HTTP layer calls into.
type Handlers struct {
	steganographyService service.SteganographyService
}

// NewHandlers constructs a Handlers with an injected SteganographyService.
func NewHandlers(stegoService service.SteganographyService) *Handlers {
	return &Handlers{steganographyService: stegoService}
}

// HealthResponse is the liveness response body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// HealthHandler reports service liveness.
//
//	@Summary		Health Check
//	@Description	Returns the health status of the API service
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"Service is healthy"
//	@Router			/health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
	})
}

// CalculateCapacityHandler reports the embedding capacity of an uploaded
// image for both the adaptive and simple-LSB paths.
//
//	@Summary		Calculate Image Embedding Capacity
//	@Description	Calculates the adaptive and simple-LSB embedding capacity of an uploaded cover image.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image			formData	file					true	"Cover image (PNG/JPEG)"
//	@Param			block_size		formData	int						false	"Adaptive block size (default 8)"
//	@Param			edge_threshold	formData	number					false	"Adaptive edge threshold (default 30)"
//	@Success		200				{object}	models.CapacityResult	"Successfully calculated embedding capacity"
//	@Failure		400				{object}	models.ErrorResponse	"Bad request"
//	@Failure		500				{object}	models.ErrorResponse	"Processing error"
//	@Router			/capacity [post]
func (h *Handlers) CalculateCapacityHandler(c *gin.Context) {
	requestID := traceID(c)
	log.Printf("[INFO] [%s] CalculateCapacityHandler: request from %s", requestID, c.ClientIP())

	imageData, _, err := readFormFile(c, "image")
	if err != nil {
		log.Printf("[ERROR] [%s] CalculateCapacityHandler: %v", requestID, err)
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Image file not provided")
		return
	}

	blockSize := intFormOrDefault(c, "block_size", 0)
	edgeThreshold := floatFormOrDefault(c, "edge_threshold", -1)

	result, err := h.steganographyService.CalculateCapacity(imageData, blockSize, edgeThreshold)
	if err != nil {
		log.Printf("[ERROR] [%s] CalculateCapacityHandler: %v", requestID, err)
		sendError(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// EmbedHandler embeds a payload into a cover image.
//
//	@Summary		Embed payload into an image
//	@Description	Embeds a payload into a cover image using the adaptive or simple-LSB method, optionally encrypted with a passphrase.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		image/png
//	@Param			image			formData	file					true	"Cover image"
//	@Param			payload			formData	file					true	"Payload to embed"
//	@Param			method			formData	string					false	"adaptive (default), simple, or simple-adaptive"
//	@Param			passphrase		formData	string					false	"AES-CTR passphrase"
//	@Param			block_size		formData	int						false	"Adaptive block size"
//	@Param			edge_threshold	formData	number					false	"Adaptive edge threshold"
//	@Success		200				{file}		binary					"Stego PNG"
//	@Failure		400				{object}	models.ErrorResponse	"Invalid input"
//	@Failure		500				{object}	models.ErrorResponse	"Processing error"
//	@Router			/embed [post]
func (h *Handlers) EmbedHandler(c *gin.Context) {
	start := time.Now()

	imageData, _, err := readFormFile(c, "image")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Cover image not provided")
		return
	}
	payloadData, _, err := readFormFile(c, "payload")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Payload not provided")
		return
	}

	req := &models.EmbedRequest{
		CoverImage:    imageData,
		Payload:       payloadData,
		Method:        c.PostForm("method"),
		Passphrase:    c.PostForm("passphrase"),
		BlockSize:     intFormOrDefault(c, "block_size", 0),
		EdgeThreshold: floatFormOrDefault(c, "edge_threshold", -1),
	}

	stego, psnr, err := h.steganographyService.EmbedMessage(req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to embed data: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="stego.png"`)
	c.Header("X-PSNR-Value", fmt.Sprintf("%.2f", psnr))
	c.Header("X-Embedding-Method", methodOrDefault(req.Method))
	c.Header("X-Secret-Size", strconv.Itoa(len(payloadData)))
	c.Header("X-Processing-Time", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	c.Data(http.StatusOK, "image/png", stego)
}

// ExtractHandler extracts a previously-embedded payload from a stego
// image.
//
//	@Summary		Extract payload from a stego image
//	@Description	Extracts a payload previously embedded with EmbedHandler.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		application/octet-stream
//	@Param			image			formData	file					true	"Stego image"
//	@Param			method			formData	string					false	"adaptive (default), simple, or simple-adaptive"
//	@Param			passphrase		formData	string					false	"AES-CTR passphrase"
//	@Param			block_size		formData	int						false	"Adaptive block size"
//	@Param			edge_threshold	formData	number					false	"Adaptive edge threshold"
//	@Success		200				{file}		binary					"Recovered payload"
//	@Failure		400				{object}	models.ErrorResponse	"Invalid input"
//	@Failure		500				{object}	models.ErrorResponse	"Extraction error"
//	@Router			/extract [post]
func (h *Handlers) ExtractHandler(c *gin.Context) {
	start := time.Now()

	imageData, _, err := readFormFile(c, "image")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Stego image not provided")
		return
	}

	req := &models.ExtractRequest{
		StegoImage:    imageData,
		Method:        c.PostForm("method"),
		Passphrase:    c.PostForm("passphrase"),
		BlockSize:     intFormOrDefault(c, "block_size", 0),
		EdgeThreshold: floatFormOrDefault(c, "edge_threshold", -1),
	}

	payload, err := h.steganographyService.ExtractMessage(req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "EXTRACTION_ERROR", "Failed to extract data: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payload.bin"`)
	c.Header("X-Secret-Size", strconv.Itoa(len(payload)))
	c.Header("X-Processing-Time", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	c.Data(http.StatusOK, "application/octet-stream", payload)
}

// MetricsHandler computes MSE/PSNR/entropy/histogram deviation between a
// cover and a stego image.
//
//	@Summary		Compute image-quality metrics
//	@Description	Computes MSE, PSNR, entropy, and histogram deviation between a cover and a stego image.
//	@Tags			Metrics
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			cover			formData	file					true	"Cover image"
//	@Param			stego			formData	file					true	"Stego image"
//	@Success		200				{object}	models.MetricsResult
//	@Failure		400				{object}	models.ErrorResponse
//	@Router			/metrics [post]
func (h *Handlers) MetricsHandler(c *gin.Context) {
	coverData, _, err := readFormFile(c, "cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Cover image not provided")
		return
	}
	stegoData, _, err := readFormFile(c, "stego")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Stego image not provided")
		return
	}

	result, err := h.steganographyService.EvaluateMetrics(coverData, stegoData)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SteganalysisHandler runs RS analysis, chi-square PoV, and (if a cover
// is also supplied) histogram analysis against a stego image.
//
//	@Summary		Run steganalysis attacks
//	@Description	Runs RS analysis and a chi-square pairs-of-values attack on a stego image, plus histogram analysis if a cover image is also supplied.
//	@Tags			Steganalysis
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			stego			formData	file					true	"Stego (or candidate) image"
//	@Param			cover			formData	file					false	"Cover image, for histogram comparison"
//	@Success		200				{object}	models.SteganalysisResult
//	@Failure		400				{object}	models.ErrorResponse
//	@Router			/steganalysis [post]
func (h *Handlers) SteganalysisHandler(c *gin.Context) {
	stegoData, _, err := readFormFile(c, "stego")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Stego image not provided")
		return
	}
	coverData, _, _ := readFormFile(c, "cover")

	result, err := h.steganographyService.RunSteganalysis(coverData, stegoData)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		return v.(string)
	}
	return "-"
}

func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

func intFormOrDefault(c *gin.Context, field string, def int) int {
	v := c.PostForm(field)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatFormOrDefault(c *gin.Context, field string, def float64) float64 {
	v := c.PostForm(field)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func methodOrDefault(method string) string {
	if method == "" {
		return "adaptive"
	}
	return method
}

func sendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, models.ErrorResponse{
		Success: false,
		Error: models.ErrorDetail{
			Message: message,
			Details: map[string]interface{}{"code": code},
		},
	})
}
