package domain

// Default model choices. These match the hosted models the assistant
// was tuned against; both can be overridden in configuration.
const (
	DefaultLLMModel       = "gpt-4o-mini"
	DefaultEmbeddingModel = "text-embedding-3-small"
)

// LLMSettings holds language model provider configuration.
type LLMSettings struct {
	// APIKey is the API key. The OPENAI_API_KEY environment variable
	// takes precedence over the configured value.
	APIKey string

	// Model is the chat model name.
	Model string

	// BaseURL is the API endpoint, for OpenAI-compatible servers.
	BaseURL string

	// MaxTokens caps answer generation.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	return l.APIKey != ""
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// APIKey is the API key. Defaults to the LLM key when empty.
	APIKey string

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint, for OpenAI-compatible servers.
	BaseURL string

	// BatchSize is the number of texts sent per embedding request.
	BatchSize int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	return e.APIKey != ""
}

// IndexSettings holds retrieval configuration.
type IndexSettings struct {
	// PersistDir is the on-disk index directory. Its presence triggers
	// load-instead-of-rebuild at startup.
	PersistDir string

	// TopK is how many documents retrieval fetches before filtering.
	TopK int

	// SimilarityCutoff drops retrieved documents whose similarity does
	// not exceed this value. The cutoff is exclusive.
	SimilarityCutoff float64
}

// DataSettings holds the source data file locations.
type DataSettings struct {
	// PermitPath is the permit/authorization data set (e_data.json).
	PermitPath string

	// OverviewPath is the overview data set (n_data.json).
	OverviewPath string
}

// SpeechSettings holds voice interaction configuration.
type SpeechSettings struct {
	// Enabled turns spoken answers on. Capture still requires a
	// recorder command.
	Enabled bool

	// Voice is the TTS voice name.
	Voice string

	// Speed is the default playback speed.
	Speed SpeechSpeed

	// RecorderCommand records CaptureSeconds of microphone audio to a
	// WAV file, e.g. "arecord -q -f S16_LE -r 16000 -c 1 -d {seconds} {path}".
	// Empty disables voice capture.
	RecorderCommand string

	// PlayerCommand plays an MP3 file, e.g. "mpg123 -q {path}".
	// Empty disables spoken answers.
	PlayerCommand string

	// CaptureSeconds is the fixed question recording duration.
	CaptureSeconds int
}

// OCRSettings holds box text extraction configuration.
type OCRSettings struct {
	// BaseURL is the OCR service endpoint. Empty disables OCR.
	BaseURL string

	// MinConfidence drops recognised regions at or below this value.
	MinConfidence float64

	// ImagePath is the default box image used by the chat loop.
	ImagePath string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// LLM holds language model provider settings.
	LLM LLMSettings

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// Index holds retrieval settings.
	Index IndexSettings

	// Data holds source data file locations.
	Data DataSettings

	// Speech holds voice interaction settings.
	Speech SpeechSettings

	// OCR holds box text extraction settings.
	OCR OCRSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// API keys are left unconfigured; they come from the environment or
// the settings command.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Model:       DefaultLLMModel,
			MaxTokens:   2000,
			Temperature: 0.1,
		},
		Embedding: EmbeddingSettings{
			Model:     DefaultEmbeddingModel,
			BatchSize: 100,
		},
		Index: IndexSettings{
			PersistDir:       "medicine_index",
			TopK:             10,
			SimilarityCutoff: 0.3,
		},
		Data: DataSettings{
			PermitPath:   "e_data.json",
			OverviewPath: "n_data.json",
		},
		Speech: SpeechSettings{
			Enabled:        true,
			Voice:          "alloy",
			Speed:          SpeedNormal,
			CaptureSeconds: 10,
		},
		OCR: OCRSettings{
			MinConfidence: 0.3,
		},
	}
}
