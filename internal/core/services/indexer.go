package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.IndexService = (*Indexer)(nil)

// DataSource is one medicine data file together with its schema.
type DataSource struct {
	Path string
	Kind domain.SchemaKind
}

// sourceFile is the on-disk shape of a medicine data file.
type sourceFile struct {
	Medicines []map[string]any `json:"medicines"`
}

// Indexer builds the document index from the source data files, or
// loads a previously persisted one.
type Indexer struct {
	sources    []DataSource
	persistDir string
	embedder   driven.EmbeddingService
	provider   driven.VectorIndexProvider
	batchSize  int
}

// NewIndexer creates an index service. The embedder may be nil, in
// which case a fresh build is impossible and only a persisted index
// can be served.
func NewIndexer(
	sources []DataSource,
	persistDir string,
	embedder driven.EmbeddingService,
	provider driven.VectorIndexProvider,
	batchSize int,
) *Indexer {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Indexer{
		sources:    sources,
		persistDir: persistDir,
		embedder:   embedder,
		provider:   provider,
		batchSize:  batchSize,
	}
}

// BuildOrLoad loads the persisted index when its directory exists,
// otherwise ingests the source files and builds a new one. A nil index
// with a nil error means no document could be produced; retrieval is
// disabled for the run, never the whole assistant.
func (s *Indexer) BuildOrLoad(ctx context.Context) (driven.VectorIndex, error) {
	logger.Section("Index")

	if _, err := os.Stat(s.persistDir); err == nil {
		// An existing directory is loaded as-is. Source files are not
		// re-read; staleness is the operator's responsibility.
		logger.Info("Loading persisted index from %s", s.persistDir)
		idx, err := s.provider.Open(s.persistDir)
		if err != nil {
			return nil, fmt.Errorf("load persisted index: %w", err)
		}
		return idx, nil
	}

	docs := s.loadDocuments()
	if len(docs) == 0 {
		logger.Warn("No medicine data could be loaded; retrieval disabled for this run")
		return nil, nil
	}

	if s.embedder == nil {
		logger.Warn("Embedding service unavailable; retrieval disabled for this run")
		return nil, nil
	}

	logger.Info("Building index from %d documents", len(docs))
	idx, err := s.provider.Open(s.persistDir)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	if err := s.populate(ctx, idx, docs); err != nil {
		idx.Close()
		// A half-built directory must not masquerade as a valid
		// persisted index on the next run.
		if rmErr := os.RemoveAll(s.persistDir); rmErr != nil {
			logger.Warn("Could not remove partial index %s: %v", s.persistDir, rmErr)
		}
		return nil, err
	}

	return idx, nil
}

// loadDocuments reads every configured source file and formats its
// records. Missing or malformed files are reported and skipped; they
// never abort the build.
func (s *Indexer) loadDocuments() []domain.FormattedDocument {
	var docs []domain.FormattedDocument

	for _, src := range s.sources {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			logger.Warn("Skipping %s source %s: %v", src.Kind, src.Path, err)
			continue
		}

		var file sourceFile
		if err := json.Unmarshal(data, &file); err != nil {
			logger.Warn("Skipping %s source %s: %v", src.Kind, src.Path, err)
			continue
		}

		count := 0
		for _, raw := range file.Medicines {
			rec := domain.NewMedicineRecord(raw)
			doc, ok := DocumentFromRecord(rec, src.Kind)
			if !ok {
				continue
			}
			doc.ID = uuid.NewString()
			docs = append(docs, doc)
			count++
		}
		logger.Debug("Loaded %d documents from %s", count, src.Path)
	}

	return docs
}

// populate embeds all documents in batches and stores them.
func (s *Indexer) populate(ctx context.Context, idx driven.VectorIndex, docs []domain.FormattedDocument) error {
	for start := 0; start < len(docs); start += s.batchSize {
		end := start + s.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		texts := make([]string, len(batch))
		for i := range batch {
			texts[i] = batch[i].Text
		}

		vectors, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed documents %d-%d: %w", start, end, err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("embed documents %d-%d: got %d vectors for %d texts",
				start, end, len(vectors), len(batch))
		}

		for i := range batch {
			if err := idx.Add(ctx, batch[i], vectors[i]); err != nil {
				return fmt.Errorf("store document %s: %w", batch[i].ID, err)
			}
		}
	}
	return nil
}
