package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
)

// MockAssistantService implements driving.AssistantService for testing.
type MockAssistantService struct {
	AskFunc        func(ctx context.Context, question, ocrContext string) string
	AskVoiceFunc   func(ctx context.Context, ocrContext string) (string, string, error)
	ExtractFunc    func(ctx context.Context, imagePath string) string
	SayFunc        func(ctx context.Context, text string)
	CanListenValue bool

	Spoken []string
}

func (m *MockAssistantService) Ask(ctx context.Context, question, ocrContext string) string {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question, ocrContext)
	}
	return ""
}

func (m *MockAssistantService) AskVoice(
	ctx context.Context, ocrContext string,
) (string, string, error) {
	if m.AskVoiceFunc != nil {
		return m.AskVoiceFunc(ctx, ocrContext)
	}
	return "", "", nil
}

func (m *MockAssistantService) ExtractBoxContext(ctx context.Context, imagePath string) string {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, imagePath)
	}
	return ""
}

func (m *MockAssistantService) Say(ctx context.Context, text string) {
	m.Spoken = append(m.Spoken, text)
	if m.SayFunc != nil {
		m.SayFunc(ctx, text)
	}
}

func (m *MockAssistantService) CanListen() bool {
	return m.CanListenValue
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings *domain.AppSettings
	GetErr   error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Settings != nil {
		return m.Settings, nil
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *MockSettingsService) SetAPIKey(key string) error { return nil }

func (m *MockSettingsService) Set(key string, value any) error { return nil }

func (m *MockSettingsService) Path() string { return "" }

// Compile-time interface checks for the mocks.
var (
	_ driving.AssistantService = (*MockAssistantService)(nil)
	_ driving.SettingsService  = (*MockSettingsService)(nil)
)

func TestPorts_Validate_Success(t *testing.T) {
	ports := &Ports{
		Assistant: &MockAssistantService{},
		Settings:  &MockSettingsService{},
	}

	require.NoError(t, ports.Validate())
}

func TestPorts_Validate_NilPorts(t *testing.T) {
	var ports *Ports

	assert.Error(t, ports.Validate())
}

func TestPorts_Validate_MissingAssistant(t *testing.T) {
	ports := &Ports{
		Settings: &MockSettingsService{},
	}

	err := ports.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "assistant")
}

func TestPorts_Validate_SettingsOptional(t *testing.T) {
	ports := &Ports{
		Assistant: &MockAssistantService{},
	}

	assert.NoError(t, ports.Validate())
}
