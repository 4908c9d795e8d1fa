// Package paddle reads text off medicine box images through a
// PaddleOCR serving endpoint.
package paddle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// Ensure TextExtractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Default configuration values.
const (
	DefaultMinConfidence = 0.3
	DefaultTimeout       = 30 * time.Second

	// predictPath is the PaddleOCR serving endpoint.
	predictPath = "/predict/ocr_system"
)

// Config holds configuration for the extractor.
type Config struct {
	// BaseURL is the PaddleOCR serving address (required),
	// e.g. http://localhost:8868.
	BaseURL string

	// MinConfidence drops regions at or below this score
	// (default: 0.3).
	MinConfidence float64

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Extractor runs OCR over a serving endpoint.
type Extractor struct {
	client        *http.Client
	baseURL       string
	minConfidence float64
}

// ocrRequest is the PaddleOCR serving request format.
type ocrRequest struct {
	Images []string `json:"images"`
}

// ocrResponse is the PaddleOCR serving response format.
type ocrResponse struct {
	Results [][]ocrRegion `json:"results"`
	Status  string        `json:"status"`
	Msg     string        `json:"msg"`
}

// ocrRegion is one recognised text region.
type ocrRegion struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	TextRegion [][]float64 `json:"text_region"`
}

// NewExtractor creates a new extractor.
func NewExtractor(cfg Config) (*Extractor, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("paddle: base URL is required")
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Extractor{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		minConfidence: cfg.MinConfidence,
	}, nil
}

// Extract runs OCR on the image and returns the combined text of all
// confident regions plus the per-region detail. A missing or
// unreadable image yields empty results; only transport failures
// return an error.
func (e *Extractor) Extract(ctx context.Context, imagePath string) (string, []domain.TextRegion, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		logger.Warn("Could not read image %s: %v", imagePath, err)
		return "", nil, nil
	}

	reqBody := ocrRequest{
		Images: []string{base64.StdEncoding.EncodeToString(image)},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.baseURL+predictPath,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("ocr error (status %d): %s", resp.StatusCode, string(body))
	}

	var ocrResp ocrResponse
	if err := json.Unmarshal(body, &ocrResp); err != nil {
		return "", nil, fmt.Errorf("decode response: %w", err)
	}

	if len(ocrResp.Results) == 0 {
		return "", nil, nil
	}

	regions := filterRegions(ocrResp.Results[0], e.minConfidence)

	// Box text reads as one phrase, so regions join on spaces.
	texts := make([]string, 0, len(regions))
	for _, region := range regions {
		texts = append(texts, region.Text)
	}

	return strings.Join(texts, " "), regions, nil
}

// filterRegions keeps regions strictly above the confidence floor.
func filterRegions(raw []ocrRegion, minConfidence float64) []domain.TextRegion {
	var regions []domain.TextRegion
	for _, r := range raw {
		if r.Confidence <= minConfidence {
			continue
		}
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		regions = append(regions, domain.TextRegion{
			Text:       text,
			Confidence: r.Confidence,
			Box:        r.TextRegion,
		})
	}
	return regions
}

// Close releases resources.
func (e *Extractor) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
