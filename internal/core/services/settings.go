package services

import (
	"fmt"
	"os"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIKey          = "api_key"
	keyLLMModel        = "llm.model"
	keyLLMBaseURL      = "llm.base_url"
	keyLLMMaxTokens    = "llm.max_tokens"
	keyLLMTemperature  = "llm.temperature"
	keyEmbedModel      = "embedding.model"
	keyEmbedBaseURL    = "embedding.base_url"
	keyEmbedBatchSize  = "embedding.batch_size"
	keyIndexPersistDir = "index.persist_dir"
	keyIndexTopK       = "index.top_k"
	keyIndexCutoff     = "index.similarity_cutoff"
	keyDataPermit      = "data.permit_path"
	keyDataOverview    = "data.overview_path"
	keySpeechEnabled   = "speech.enabled"
	keySpeechVoice     = "speech.voice"
	keySpeechSpeed     = "speech.speed"
	keySpeechRecorder  = "speech.recorder_command"
	keySpeechPlayer    = "speech.player_command"
	keySpeechCapture   = "speech.capture_seconds"
	keyOCRBaseURL      = "ocr.base_url"
	keyOCRMinConf      = "ocr.min_confidence"
	keyOCRImagePath    = "ocr.image_path"
)

// envAPIKey always wins over the stored key.
const envAPIKey = "OPENAI_API_KEY"

// SettingsService manages application settings on top of a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings layered over defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	apiKey := os.Getenv(envAPIKey)
	if apiKey == "" {
		apiKey = s.configStore.GetString(keyAPIKey)
	}

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			APIKey:      apiKey,
			Model:       s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:     s.configStore.GetString(keyLLMBaseURL),
			MaxTokens:   s.getInt(keyLLMMaxTokens, defaults.LLM.MaxTokens),
			Temperature: s.getFloat(keyLLMTemperature, defaults.LLM.Temperature),
		},
		Embedding: domain.EmbeddingSettings{
			APIKey:    apiKey,
			Model:     s.getString(keyEmbedModel, defaults.Embedding.Model),
			BaseURL:   s.configStore.GetString(keyEmbedBaseURL),
			BatchSize: s.getInt(keyEmbedBatchSize, defaults.Embedding.BatchSize),
		},
		Index: domain.IndexSettings{
			PersistDir:       s.getString(keyIndexPersistDir, defaults.Index.PersistDir),
			TopK:             s.getInt(keyIndexTopK, defaults.Index.TopK),
			SimilarityCutoff: s.getFloat(keyIndexCutoff, defaults.Index.SimilarityCutoff),
		},
		Data: domain.DataSettings{
			PermitPath:   s.getString(keyDataPermit, defaults.Data.PermitPath),
			OverviewPath: s.getString(keyDataOverview, defaults.Data.OverviewPath),
		},
		Speech: domain.SpeechSettings{
			Enabled:         s.getBool(keySpeechEnabled, defaults.Speech.Enabled),
			Voice:           s.getString(keySpeechVoice, defaults.Speech.Voice),
			Speed:           s.getSpeed(defaults.Speech.Speed),
			RecorderCommand: s.configStore.GetString(keySpeechRecorder),
			PlayerCommand:   s.configStore.GetString(keySpeechPlayer),
			CaptureSeconds:  s.getInt(keySpeechCapture, defaults.Speech.CaptureSeconds),
		},
		OCR: domain.OCRSettings{
			BaseURL:       s.configStore.GetString(keyOCRBaseURL),
			MinConfidence: s.getFloat(keyOCRMinConf, defaults.OCR.MinConfidence),
			ImagePath:     s.configStore.GetString(keyOCRImagePath),
		},
	}

	return settings, nil
}

// SetAPIKey stores the shared API key.
func (s *SettingsService) SetAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: API key is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyAPIKey, key)
}

// Set stores a raw configuration value by dotted key.
func (s *SettingsService) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: config key is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(key, value)
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getSpeed(fallback domain.SpeechSpeed) domain.SpeechSpeed {
	speed := domain.SpeechSpeed(s.configStore.GetString(keySpeechSpeed))
	if !speed.IsValid() {
		return fallback
	}
	return speed
}
