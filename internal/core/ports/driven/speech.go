package driven

import (
	"context"
	"time"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

// Recorder captures a fixed duration of microphone audio.
// Device management is entirely the adapter's concern.
type Recorder interface {
	// Record captures audio for the given duration and returns the
	// path of a WAV file holding the capture. The caller removes the
	// file when done.
	Record(ctx context.Context, duration time.Duration) (string, error)
}

// Transcriber converts captured audio into text.
type Transcriber interface {
	// Transcribe returns the recognised text for the audio file.
	// An empty result means nothing usable was recognised; the caller
	// treats that as "no question", not as an error.
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Close releases resources.
	Close() error
}

// Speaker voices a text answer. Failures never propagate past the
// adapter boundary as anything other than an error to log.
type Speaker interface {
	// Speak synthesizes and plays the text at the given speed.
	Speak(ctx context.Context, text string, speed domain.SpeechSpeed) error

	// Close releases resources.
	Close() error
}
