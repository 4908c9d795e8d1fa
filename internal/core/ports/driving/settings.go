package driving

import "github.com/yakdam-labs/yakdam-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, layered over defaults.
	// The OPENAI_API_KEY environment variable overrides stored keys.
	Get() (*domain.AppSettings, error)

	// SetAPIKey stores the API key used for the LLM, embedding, speech
	// and OCR services.
	SetAPIKey(key string) error

	// Set stores a raw configuration value by dotted key.
	Set(key string, value any) error

	// Path returns the configuration file location.
	Path() string
}
