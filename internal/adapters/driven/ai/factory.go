// Package ai provides factory functions for creating the assistant's
// driven service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	openaiembed "github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/embedding/openai"
	openaillm "github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/llm/openai"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/ocr/paddle"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/speech/capture"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/speech/whisper"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/tts/null"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/tts/openaitts"
	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateLLMService creates the LLM service and validates
// connectivity. Returns nil when no API key is configured.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'yakdam settings key' to fix",
			domain.ErrLLMUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'yakdam settings key' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// CreateAndValidateEmbeddingService creates the embedding service and
// validates connectivity. Returns nil when no API key is configured.
func CreateAndValidateEmbeddingService(settings *domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := openaiembed.NewEmbeddingService(openaiembed.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'yakdam settings key' to fix",
			domain.ErrEmbeddingUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'yakdam settings key' to fix",
			domain.ErrEmbeddingUnavailable, err)
	}

	return svc, nil
}

// CreateSpeechServices creates the voice collaborators. When speech is
// disabled or no API key is available, capture and transcription are
// nil and the speaker is a no-op; the assistant still answers typed
// questions.
func CreateSpeechServices(settings domain.SpeechSettings, apiKey string) (driven.Recorder, driven.Transcriber, driven.Speaker, error) {
	if !settings.Enabled || apiKey == "" {
		return nil, nil, null.NewSpeaker(), nil
	}

	transcriber, err := whisper.NewTranscriber(whisper.Config{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", domain.ErrSpeechUnavailable, err)
	}

	speaker, err := openaitts.NewSpeaker(openaitts.Config{
		APIKey:        apiKey,
		Voice:         settings.Voice,
		PlayerCommand: settings.PlayerCommand,
	})
	if err != nil {
		transcriber.Close()
		return nil, nil, nil, fmt.Errorf("%w: %w", domain.ErrSpeechUnavailable, err)
	}

	return capture.NewRecorder(settings.RecorderCommand), transcriber, speaker, nil
}

// CreateTextExtractor creates the box OCR collaborator. Returns nil
// when no OCR endpoint is configured.
func CreateTextExtractor(settings domain.OCRSettings) (driven.TextExtractor, error) {
	if settings.BaseURL == "" {
		return nil, nil
	}

	extractor, err := paddle.NewExtractor(paddle.Config{
		BaseURL:       settings.BaseURL,
		MinConfidence: settings.MinConfidence,
	})
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}
	return extractor, nil
}
