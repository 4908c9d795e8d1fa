package driven

import (
	"context"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

// TextExtractor reads text off a medicine box image.
type TextExtractor interface {
	// Extract runs OCR on the image and returns the combined text of
	// all confident regions plus the per-region detail. A missing or
	// unreadable image yields empty results and a nil error slice;
	// only transport-level failures return an error.
	Extract(ctx context.Context, imagePath string) (string, []domain.TextRegion, error)

	// Close releases resources.
	Close() error
}
