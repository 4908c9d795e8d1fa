package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("llm.model", "gpt-4o-mini")
	require.NoError(t, err)

	val, ok := store.Get("llm.model")
	assert.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("speech.voice", "alloy")
	_ = store.Set("index.top_k", 10)

	assert.Equal(t, "alloy", store.GetString("speech.voice"))
	assert.Equal(t, "", store.GetString("index.top_k"), "non-string values return empty")
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("index.top_k", 10)
	_ = store.Set("llm.max_tokens", int64(2000))
	_ = store.Set("embedding.batch_size", float64(100))

	assert.Equal(t, 10, store.GetInt("index.top_k"))
	assert.Equal(t, 2000, store.GetInt("llm.max_tokens"))
	assert.Equal(t, 100, store.GetInt("embedding.batch_size"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("index.similarity_cutoff", 0.3)
	_ = store.Set("llm.max_tokens", 2000)

	assert.InDelta(t, 0.3, store.GetFloat("index.similarity_cutoff"), 1e-9)
	assert.InDelta(t, 2000.0, store.GetFloat("llm.max_tokens"), 1e-9)
	assert.Zero(t, store.GetFloat("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("speech.enabled", true)
	_ = store.Set("speech.voice", "alloy")

	assert.True(t, store.GetBool("speech.enabled"))
	assert.False(t, store.GetBool("speech.voice"), "non-bool values return false")
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
