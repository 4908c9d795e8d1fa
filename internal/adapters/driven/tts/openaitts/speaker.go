// Package openaitts voices answers using the OpenAI speech API and a
// local player command.
package openaitts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// Ensure Speaker implements the interface.
var _ driven.Speaker = (*Speaker)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "tts-1"
	DefaultVoice   = "alloy"
	DefaultTimeout = 60 * time.Second
)

// PlaceholderPath marks where the audio file path goes in the player
// command.
const PlaceholderPath = "{path}"

// Config holds configuration for the speaker.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	BaseURL string

	// Model is the speech model (default: tts-1).
	Model string

	// Voice selects the synthetic voice (default: alloy).
	Voice string

	// PlayerCommand plays the synthesized audio file. When empty a
	// platform default is used.
	PlayerCommand string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Speaker synthesizes speech via /audio/speech and plays it locally.
type Speaker struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	voice   string
	player  string
}

// speechRequest is the OpenAI /audio/speech request format.
type speechRequest struct {
	Model string  `json:"model"`
	Input string  `json:"input"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed,omitempty"`
}

// speechErrorResponse is returned instead of audio when the request fails.
type speechErrorResponse struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewSpeaker creates a new speaker.
func NewSpeaker(cfg Config) (*Speaker, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("tts: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = DefaultVoice
	}
	if cfg.PlayerCommand == "" {
		cfg.PlayerCommand = defaultPlayerCommand()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Speaker{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		voice:   cfg.Voice,
		player:  cfg.PlayerCommand,
	}, nil
}

// defaultPlayerCommand picks an audio player for the current platform.
func defaultPlayerCommand() string {
	if runtime.GOOS == "darwin" {
		return "afplay {path}"
	}
	return "mpg123 -q {path}"
}

// speedFactor maps the speech speed setting to the API speed value.
func speedFactor(speed domain.SpeechSpeed) float64 {
	switch speed {
	case domain.SpeedSlow:
		return 0.8
	case domain.SpeedFast:
		return 1.25
	default:
		return 1.0
	}
}

// Speak synthesizes and plays the text at the given speed.
func (s *Speaker) Speak(ctx context.Context, text string, speed domain.SpeechSpeed) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	audio, err := s.synthesize(ctx, text, speed)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "yakdam-speech-*.mp3")
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return fmt.Errorf("write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close audio file: %w", err)
	}

	return s.play(ctx, path)
}

// synthesize fetches the spoken audio for text.
func (s *Speaker) synthesize(ctx context.Context, text string, speed domain.SpeechSpeed) ([]byte, error) {
	reqBody := speechRequest{
		Model: s.model,
		Input: text,
		Voice: s.voice,
		Speed: speedFactor(speed),
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/audio/speech",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp speechErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
			return nil, fmt.Errorf("tts error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("tts error (status %d)", resp.StatusCode)
	}

	return body, nil
}

// play runs the player command on the audio file.
func (s *Speaker) play(ctx context.Context, path string) error {
	fields := strings.Fields(s.player)
	if len(fields) == 0 {
		return fmt.Errorf("tts: player command is empty")
	}

	args := make([]string, 0, len(fields))
	for _, field := range fields {
		args = append(args, strings.ReplaceAll(field, PlaceholderPath, path))
	}

	logger.Debug("Playing speech with %s", args[0])

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tts: %s failed: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Close releases resources.
func (s *Speaker) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
