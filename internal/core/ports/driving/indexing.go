package driving

import (
	"context"

	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
)

// IndexService builds or loads the persisted document index.
type IndexService interface {
	// BuildOrLoad loads the index from its persist directory when one
	// exists, otherwise ingests the source data files and builds a new
	// one. Returns a nil index (and nil error) when no document could
	// be produced; retrieval stays disabled for the run.
	BuildOrLoad(ctx context.Context) (driven.VectorIndex, error)
}
