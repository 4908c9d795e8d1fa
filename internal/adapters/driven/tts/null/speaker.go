// Package null provides a no-op speaker for text-only sessions.
package null

import (
	"context"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
)

// Ensure Speaker implements the interface.
var _ driven.Speaker = (*Speaker)(nil)

// Speaker silently discards everything it is asked to say.
type Speaker struct{}

// NewSpeaker creates a no-op speaker.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Speak does nothing.
func (s *Speaker) Speak(_ context.Context, _ string, _ domain.SpeechSpeed) error {
	return nil
}

// Close does nothing.
func (s *Speaker) Close() error {
	return nil
}
