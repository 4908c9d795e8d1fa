package driving

import "context"

// AnswerEngine produces an answer for an already-enhanced prompt.
// The contract is total: whatever goes wrong internally, the return
// value is user-presentable text, never an error.
type AnswerEngine interface {
	// Answer returns a plain-text answer for the enhanced prompt.
	Answer(ctx context.Context, enhancedPrompt string) string

	// Mode describes the engine variant ("indexed" or "direct").
	Mode() string
}

// AssistantService orchestrates one full question/answer interaction.
type AssistantService interface {
	// Ask answers a question, optionally grounded in previously
	// extracted box context. Always returns presentable text.
	Ask(ctx context.Context, question, ocrContext string) string

	// AskVoice captures a spoken question, answers it and returns both
	// the recognised question and the answer. A nil error with an empty
	// question means nothing was recognised.
	AskVoice(ctx context.Context, ocrContext string) (question, answer string, err error)

	// ExtractBoxContext runs OCR on the image and returns the wrapped
	// prompt context, or "" when nothing usable was extracted.
	ExtractBoxContext(ctx context.Context, imagePath string) string

	// Say voices text when speech output is available. Failures are
	// logged and swallowed.
	Say(ctx context.Context, text string)

	// CanListen reports whether voice capture is configured.
	CanListen() bool
}
