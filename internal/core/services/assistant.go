package services

import (
	"context"
	"os"
	"time"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// Assistant orchestrates one question/answer interaction: optional box
// OCR, voice capture, question enhancement, answering and speech
// output. The speech and OCR collaborators are optional; a nil one
// degrades the interaction rather than failing it.
type Assistant struct {
	engine      driving.AnswerEngine
	recorder    driven.Recorder
	transcriber driven.Transcriber
	speaker     driven.Speaker
	extractor   driven.TextExtractor
	capture     time.Duration
	speed       domain.SpeechSpeed
}

// NewAssistant creates the assistant service. Only engine is required.
func NewAssistant(
	engine driving.AnswerEngine,
	recorder driven.Recorder,
	transcriber driven.Transcriber,
	speaker driven.Speaker,
	extractor driven.TextExtractor,
	speech domain.SpeechSettings,
) *Assistant {
	seconds := speech.CaptureSeconds
	if seconds <= 0 {
		seconds = 10
	}
	speed := speech.Speed
	if !speed.IsValid() {
		speed = domain.SpeedNormal
	}
	return &Assistant{
		engine:      engine,
		recorder:    recorder,
		transcriber: transcriber,
		speaker:     speaker,
		extractor:   extractor,
		capture:     time.Duration(seconds) * time.Second,
		speed:       speed,
	}
}

// Ask answers a question, optionally grounded in box context.
func (a *Assistant) Ask(ctx context.Context, question, ocrContext string) string {
	qc := domain.QueryContext{
		Question:   question,
		OCRContext: ocrContext,
	}
	qc.EnhancedPrompt = EnhanceQuestion(qc.Question, qc.OCRContext)

	logger.Section("Question")
	logger.Debug("Question: %q", question)
	logger.Debug("Engine: %s, OCR context: %t", a.engine.Mode(), ocrContext != "")

	return a.engine.Answer(ctx, qc.EnhancedPrompt)
}

// AskVoice captures a spoken question and answers it. An empty
// question with a nil error means nothing was recognised; the caller
// prompts the user to try again.
func (a *Assistant) AskVoice(ctx context.Context, ocrContext string) (string, string, error) {
	if !a.CanListen() {
		return "", "", domain.ErrSpeechUnavailable
	}

	audioPath, err := a.recorder.Record(ctx, a.capture)
	if err != nil {
		return "", "", err
	}
	defer os.Remove(audioPath)

	question, err := a.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return "", "", err
	}
	if question == "" {
		return "", "", nil
	}

	return question, a.Ask(ctx, question, ocrContext), nil
}

// ExtractBoxContext runs OCR on the image and wraps the result for the
// enhancer. Extraction problems degrade to "no context".
func (a *Assistant) ExtractBoxContext(ctx context.Context, imagePath string) string {
	if a.extractor == nil || imagePath == "" {
		return ""
	}

	text, regions, err := a.extractor.Extract(ctx, imagePath)
	if err != nil {
		logger.Warn("Box text extraction failed: %v", err)
		return ""
	}
	logger.Debug("Box text extraction: %d regions", len(regions))

	return FormatOCRContext(text)
}

// Say voices text when a speaker is available. Failures are logged and
// swallowed; a broken speaker must never break the interaction.
func (a *Assistant) Say(ctx context.Context, text string) {
	if a.speaker == nil || text == "" {
		return
	}
	if err := a.speaker.Speak(ctx, text, a.speed); err != nil {
		logger.Warn("Speech output failed: %v", err)
	}
}

// CanListen reports whether voice capture is configured.
func (a *Assistant) CanListen() bool {
	return a.recorder != nil && a.transcriber != nil
}
