package paddle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRegions(t *testing.T) {
	raw := []ocrRegion{
		{Text: "타이레놀정", Confidence: 0.95},
		{Text: "noise", Confidence: 0.3},
		{Text: "   ", Confidence: 0.9},
		{Text: "500mg", Confidence: 0.31},
	}

	regions := filterRegions(raw, 0.3)

	require.Len(t, regions, 2)
	assert.Equal(t, "타이레놀정", regions[0].Text)
	assert.Equal(t, "500mg", regions[1].Text, "the confidence floor is exclusive")
}

func TestNewExtractor_RequiresBaseURL(t *testing.T) {
	_, err := NewExtractor(Config{})

	require.Error(t, err)
}

func TestExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, predictPath, r.URL.Path)

		var req ocrRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Images, 1)

		resp := ocrResponse{Results: [][]ocrRegion{{
			{Text: "타이레놀정", Confidence: 0.95, TextRegion: [][]float64{{0, 0}, {10, 0}, {10, 5}, {0, 5}}},
			{Text: "blur", Confidence: 0.2},
			{Text: "500mg", Confidence: 0.9},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	imagePath := filepath.Join(t.TempDir(), "box.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644))

	extractor, err := NewExtractor(Config{BaseURL: server.URL})
	require.NoError(t, err)

	text, regions, err := extractor.Extract(context.Background(), imagePath)

	require.NoError(t, err)
	assert.Equal(t, "타이레놀정 500mg", text)
	require.Len(t, regions, 2)
	assert.Equal(t, "타이레놀정", regions[0].Text)
	assert.InDelta(t, 0.95, regions[0].Confidence, 1e-9)
	assert.NotEmpty(t, regions[0].Box)
}

func TestExtractor_Extract_MissingImage(t *testing.T) {
	extractor, err := NewExtractor(Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	text, regions, err := extractor.Extract(context.Background(), "/nonexistent/box.jpg")

	require.NoError(t, err, "a missing image degrades instead of failing")
	assert.Empty(t, text)
	assert.Empty(t, regions)
}

func TestExtractor_Extract_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	imagePath := filepath.Join(t.TempDir(), "box.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644))

	extractor, err := NewExtractor(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, _, err = extractor.Extract(context.Background(), imagePath)

	require.Error(t, err)
}

func TestExtractor_Extract_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ocrResponse{})
	}))
	defer server.Close()

	imagePath := filepath.Join(t.TempDir(), "box.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644))

	extractor, err := NewExtractor(Config{BaseURL: server.URL})
	require.NoError(t, err)

	text, regions, err := extractor.Extract(context.Background(), imagePath)

	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Empty(t, regions)
}
