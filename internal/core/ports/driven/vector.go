package driven

import (
	"context"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

// VectorIndex is the persisted document index. It is write-once: all
// documents are added during the initial build, after which the index
// only serves similarity searches for the rest of the run.
type VectorIndex interface {
	// Add stores a document together with its embedding vector.
	Add(ctx context.Context, doc domain.FormattedDocument, embedding []float32) error

	// Search finds the k most similar stored documents to the query
	// vector, best first. No cutoff is applied here; filtering is the
	// caller's job.
	Search(ctx context.Context, query []float32, k int) ([]domain.SimilarDocument, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// VectorIndexProvider opens a persisted vector index rooted at a
// directory. Opening an existing directory loads it as-is; the stored
// state is trusted wholesale and never validated against the source
// data files.
type VectorIndexProvider interface {
	// Open opens or creates the index under dir.
	Open(dir string) (VectorIndex, error)
}
