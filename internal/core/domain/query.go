package domain

// QueryContext carries the per-question state through the answer
// pipeline. One is constructed for each user question and discarded
// once the answer has been produced.
type QueryContext struct {
	// Question is the raw text from speech recognition or typed input.
	Question string

	// OCRContext is the optional box text extracted from an image,
	// already wrapped in its explanatory template. Empty when no image
	// was provided or extraction produced nothing usable.
	OCRContext string

	// EnhancedPrompt is the instruction-augmented prompt derived from
	// Question and OCRContext by the question enhancer.
	EnhancedPrompt string
}

// SpeechSpeed selects the spoken-answer playback speed.
type SpeechSpeed string

// Available speech speeds.
const (
	SpeedSlow   SpeechSpeed = "slow"
	SpeedNormal SpeechSpeed = "normal"
	SpeedFast   SpeechSpeed = "fast"
)

// IsValid returns true if the speed is recognised.
func (s SpeechSpeed) IsValid() bool {
	switch s {
	case SpeedSlow, SpeedNormal, SpeedFast:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SpeechSpeed) String() string {
	return string(s)
}

// TextRegion is a single recognised text region from box OCR.
type TextRegion struct {
	// Text is the recognised text with surrounding whitespace removed.
	Text string

	// Confidence is the recogniser's confidence in [0,1].
	Confidence float64

	// Box is the region's bounding polygon in image coordinates.
	Box [][]float64
}
