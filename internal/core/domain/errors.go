package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the language model service is not
	// configured. The assistant cannot start without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Retrieval is disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrSpeechUnavailable indicates voice capture or playback is not
	// configured. The assistant degrades to typed interaction.
	ErrSpeechUnavailable = errors.New("speech services unavailable")
)

// AnswerStage identifies where inside the answer pipeline a failure
// happened. The user always receives the same fixed apology; the stage
// is kept for logs only.
type AnswerStage string

// Pipeline stages that can fail.
const (
	StageEmbed      AnswerStage = "embed"
	StageRetrieve   AnswerStage = "retrieve"
	StageSynthesize AnswerStage = "synthesize"
	StageComplete   AnswerStage = "complete"
)

// AnswerError wraps a pipeline failure with the stage it occurred in.
type AnswerError struct {
	Stage AnswerStage
	Err   error
}

// Error implements the error interface.
func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer pipeline failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *AnswerError) Unwrap() error {
	return e.Err
}
