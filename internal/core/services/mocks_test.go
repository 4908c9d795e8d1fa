package services

import (
	"context"
	"os"
	"time"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
)

// --- Mock implementations shared across the service tests ---

// mockEmbeddingService implements driven.EmbeddingService.
type mockEmbeddingService struct {
	embedding  []float32
	embedErr   error
	batchErr   error
	shortBatch bool
	batchSizes []int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	m.batchSizes = append(m.batchSizes, len(texts))
	n := len(texts)
	if m.shortBatch && n > 0 {
		n--
	}
	result := make([][]float32, n)
	for i := range result {
		result[i] = m.embedding
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int { return len(m.embedding) }

func (m *mockEmbeddingService) ModelName() string { return "mock-embedding" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }

func (m *mockEmbeddingService) Close() error { return nil }

// mockLLMService implements driven.LLMService.
type mockLLMService struct {
	response string
	err      error
	prompts  []string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.prompts = append(m.prompts, prompt)
	return m.response, nil
}

func (m *mockLLMService) ModelName() string { return "mock-llm" }

func (m *mockLLMService) Ping(_ context.Context) error { return nil }

func (m *mockLLMService) Close() error { return nil }

// mockVectorIndex implements driven.VectorIndex.
type mockVectorIndex struct {
	hits      []domain.SimilarDocument
	searchErr error
	addErr    error
	lastK     int
	added     []domain.FormattedDocument
	closed    bool
}

func (m *mockVectorIndex) Add(_ context.Context, doc domain.FormattedDocument, _ []float32) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, doc)
	return nil
}

func (m *mockVectorIndex) Search(_ context.Context, _ []float32, k int) ([]domain.SimilarDocument, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	m.lastK = k
	if k > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:k], nil
}

func (m *mockVectorIndex) Count(_ context.Context) (int, error) {
	return len(m.added), nil
}

func (m *mockVectorIndex) Close() error {
	m.closed = true
	return nil
}

// mockIndexProvider implements driven.VectorIndexProvider. Open
// creates the directory the way a real provider would.
type mockIndexProvider struct {
	index   *mockVectorIndex
	openErr error
	opened  []string
}

func (m *mockIndexProvider) Open(dir string) (driven.VectorIndex, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	m.opened = append(m.opened, dir)
	return m.index, nil
}

// mockRecorder implements driven.Recorder.
type mockRecorder struct {
	path      string
	err       error
	durations []time.Duration
}

func (m *mockRecorder) Record(_ context.Context, duration time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.durations = append(m.durations, duration)
	return m.path, nil
}

// mockTranscriber implements driven.Transcriber.
type mockTranscriber struct {
	text string
	err  error
}

func (m *mockTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockTranscriber) Close() error { return nil }

// mockSpeaker implements driven.Speaker.
type mockSpeaker struct {
	err    error
	spoken []string
	speeds []domain.SpeechSpeed
}

func (m *mockSpeaker) Speak(_ context.Context, text string, speed domain.SpeechSpeed) error {
	m.spoken = append(m.spoken, text)
	m.speeds = append(m.speeds, speed)
	return m.err
}

func (m *mockSpeaker) Close() error { return nil }

// mockTextExtractor implements driven.TextExtractor.
type mockTextExtractor struct {
	text    string
	regions []domain.TextRegion
	err     error
	paths   []string
}

func (m *mockTextExtractor) Extract(_ context.Context, imagePath string) (string, []domain.TextRegion, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	m.paths = append(m.paths, imagePath)
	return m.text, m.regions, nil
}

func (m *mockTextExtractor) Close() error { return nil }
