// Package sqlite provides a persisted vector index backed by SQLite.
// Documents and their embeddings live in a single database file under
// the index directory; searches scan every stored vector and rank by
// cosine similarity, which is plenty for a corpus of medicine records.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
)

// Ensure the adapter implements the interfaces.
var (
	_ driven.VectorIndex         = (*Index)(nil)
	_ driven.VectorIndexProvider = (*Provider)(nil)
)

// dbFileName is the database file inside the index directory.
const dbFileName = "index.db"

// initialSchema creates the document table. Vectors are stored as
// little-endian float32 BLOBs alongside the formatted text.
const initialSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    source TEXT NOT NULL,
    item_name TEXT NOT NULL,
    vector BLOB NOT NULL
);
`

// Provider opens SQLite-backed indexes rooted at a directory.
type Provider struct{}

// NewProvider creates an index provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Open opens or creates the index under dir.
func (p *Provider) Open(dir string) (driven.VectorIndex, error) {
	if dir == "" {
		return nil, fmt.Errorf("sqlite index: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFileName)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	if _, err := db.Exec(initialSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}

	return &Index{db: db, path: dbPath}, nil
}

// Index is a SQLite-backed vector index.
type Index struct {
	db   *sql.DB
	path string
}

// Add stores a document together with its embedding vector.
func (idx *Index) Add(ctx context.Context, doc domain.FormattedDocument, embedding []float32) error {
	if doc.ID == "" {
		return fmt.Errorf("sqlite index: document ID is required")
	}
	if len(embedding) == 0 {
		return fmt.Errorf("sqlite index: embedding is empty for document %s", doc.ID)
	}

	_, err := idx.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (id, text, source, item_name, vector) VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Text, string(doc.Source), doc.ItemName, serializeVector(embedding),
	)
	if err != nil {
		return fmt.Errorf("storing document %s: %w", doc.ID, err)
	}
	return nil
}

// Search finds the k most similar stored documents to the query
// vector, best first.
func (idx *Index) Search(ctx context.Context, query []float32, k int) ([]domain.SimilarDocument, error) {
	if len(query) == 0 {
		return nil, fmt.Errorf("sqlite index: query vector is empty")
	}
	if k <= 0 {
		return nil, nil
	}

	rows, err := idx.db.QueryContext(ctx,
		`SELECT id, text, source, item_name, vector FROM documents`,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning index: %w", err)
	}
	defer rows.Close()

	var results []domain.SimilarDocument
	for rows.Next() {
		var (
			doc    domain.FormattedDocument
			source string
			blob   []byte
		)
		if err := rows.Scan(&doc.ID, &doc.Text, &source, &doc.ItemName, &blob); err != nil {
			return nil, fmt.Errorf("reading document row: %w", err)
		}
		doc.Source = domain.SchemaKind(source)

		results = append(results, domain.SimilarDocument{
			Document:   doc,
			Similarity: cosineSimilarity(query, deserializeVector(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Count returns the number of stored documents.
func (idx *Index) Count(ctx context.Context) (int, error) {
	var count int
	err := idx.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// Path returns the database file path.
func (idx *Index) Path() string {
	return idx.path
}

// serializeVector converts a float32 slice to bytes for storage.
func serializeVector(vector []float32) []byte {
	buf := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// deserializeVector converts bytes back to a float32 slice.
func deserializeVector(data []byte) []float32 {
	vector := make([]float32, len(data)/4)
	for i := range vector {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		vector[i] = math.Float32frombits(bits)
	}
	return vector
}

// cosineSimilarity calculates the cosine similarity between two vectors.
// Mismatched or zero-length vectors score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
