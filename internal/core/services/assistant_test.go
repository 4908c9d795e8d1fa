package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

// recordingEngine captures the prompt the assistant hands over.
type recordingEngine struct {
	answer string
	prompt string
}

func (e *recordingEngine) Answer(_ context.Context, enhancedPrompt string) string {
	e.prompt = enhancedPrompt
	return e.answer
}

func (e *recordingEngine) Mode() string { return "recording" }

func defaultSpeech() domain.SpeechSettings {
	return domain.SpeechSettings{CaptureSeconds: 10, Speed: domain.SpeedNormal}
}

func TestAssistant_Ask_EnhancesQuestion(t *testing.T) {
	engine := &recordingEngine{answer: "답변"}
	assistant := NewAssistant(engine, nil, nil, nil, nil, defaultSpeech())

	answer := assistant.Ask(context.Background(), "타이레놀 부작용이 뭐야?", "")

	assert.Equal(t, "답변", answer)
	assert.Contains(t, engine.prompt, "질문: 타이레놀 부작용이 뭐야?")
	assert.Contains(t, engine.prompt, "부작용")
	assert.NotEqual(t, "타이레놀 부작용이 뭐야?", engine.prompt)
}

func TestAssistant_Ask_PassesBoxContext(t *testing.T) {
	engine := &recordingEngine{answer: "답변"}
	assistant := NewAssistant(engine, nil, nil, nil, nil, defaultSpeech())

	boxContext := FormatOCRContext("타이레놀정 500mg")
	assistant.Ask(context.Background(), "이 약 어떻게 먹어?", boxContext)

	assert.Contains(t, engine.prompt, "타이레놀정 500mg")
	assert.Contains(t, engine.prompt, "사용자가 입력으로 넣은 의약품 정보입니다")
}

func TestAssistant_AskVoice(t *testing.T) {
	tmp := t.TempDir()
	audioPath := filepath.Join(tmp, "capture.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("RIFF"), 0o644))

	engine := &recordingEngine{answer: "졸음이 올 수 있습니다."}
	recorder := &mockRecorder{path: audioPath}
	transcriber := &mockTranscriber{text: "부작용 알려줘"}
	assistant := NewAssistant(engine, recorder, transcriber, nil, nil, defaultSpeech())

	question, answer, err := assistant.AskVoice(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "부작용 알려줘", question)
	assert.Equal(t, "졸음이 올 수 있습니다.", answer)
	assert.Equal(t, []time.Duration{10 * time.Second}, recorder.durations)

	_, statErr := os.Stat(audioPath)
	assert.True(t, os.IsNotExist(statErr), "the capture file is removed after use")
}

func TestAssistant_AskVoice_NotConfigured(t *testing.T) {
	assistant := NewAssistant(&recordingEngine{}, nil, nil, nil, nil, defaultSpeech())

	_, _, err := assistant.AskVoice(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrSpeechUnavailable)
}

func TestAssistant_AskVoice_RecordFailure(t *testing.T) {
	recorder := &mockRecorder{err: errors.New("no microphone")}
	assistant := NewAssistant(&recordingEngine{}, recorder, &mockTranscriber{}, nil, nil, defaultSpeech())

	_, _, err := assistant.AskVoice(context.Background(), "")

	require.Error(t, err)
}

func TestAssistant_AskVoice_NothingRecognised(t *testing.T) {
	tmp := t.TempDir()
	audioPath := filepath.Join(tmp, "capture.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("RIFF"), 0o644))

	engine := &recordingEngine{answer: "unused"}
	assistant := NewAssistant(engine, &mockRecorder{path: audioPath}, &mockTranscriber{text: ""}, nil, nil, defaultSpeech())

	question, answer, err := assistant.AskVoice(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, question)
	assert.Empty(t, answer)
	assert.Empty(t, engine.prompt, "no question means no answer attempt")
}

func TestAssistant_ExtractBoxContext(t *testing.T) {
	extractor := &mockTextExtractor{
		text: "타이레놀정\n500mg",
		regions: []domain.TextRegion{
			{Text: "타이레놀정", Confidence: 0.95},
			{Text: "500mg", Confidence: 0.88},
		},
	}
	assistant := NewAssistant(&recordingEngine{}, nil, nil, nil, extractor, defaultSpeech())

	got := assistant.ExtractBoxContext(context.Background(), "box.jpg")

	assert.Contains(t, got, "[약품 상자에서 추출된 정보]")
	assert.Contains(t, got, "타이레놀정")
	assert.Equal(t, []string{"box.jpg"}, extractor.paths)
}

func TestAssistant_ExtractBoxContext_NoExtractor(t *testing.T) {
	assistant := NewAssistant(&recordingEngine{}, nil, nil, nil, nil, defaultSpeech())

	assert.Empty(t, assistant.ExtractBoxContext(context.Background(), "box.jpg"))
}

func TestAssistant_ExtractBoxContext_EmptyPath(t *testing.T) {
	extractor := &mockTextExtractor{text: "unused"}
	assistant := NewAssistant(&recordingEngine{}, nil, nil, nil, extractor, defaultSpeech())

	assert.Empty(t, assistant.ExtractBoxContext(context.Background(), ""))
	assert.Empty(t, extractor.paths)
}

func TestAssistant_ExtractBoxContext_FailureDegrades(t *testing.T) {
	extractor := &mockTextExtractor{err: errors.New("service down")}
	assistant := NewAssistant(&recordingEngine{}, nil, nil, nil, extractor, defaultSpeech())

	assert.Empty(t, assistant.ExtractBoxContext(context.Background(), "box.jpg"))
}

func TestAssistant_Say(t *testing.T) {
	speaker := &mockSpeaker{}
	speech := defaultSpeech()
	speech.Speed = domain.SpeedFast
	assistant := NewAssistant(&recordingEngine{}, nil, nil, speaker, nil, speech)

	assistant.Say(context.Background(), "안녕하세요")

	assert.Equal(t, []string{"안녕하세요"}, speaker.spoken)
	assert.Equal(t, []domain.SpeechSpeed{domain.SpeedFast}, speaker.speeds)
}

func TestAssistant_Say_NoSpeaker(t *testing.T) {
	assistant := NewAssistant(&recordingEngine{}, nil, nil, nil, nil, defaultSpeech())

	assistant.Say(context.Background(), "안녕하세요")
}

func TestAssistant_Say_FailureSwallowed(t *testing.T) {
	speaker := &mockSpeaker{err: errors.New("no audio device")}
	assistant := NewAssistant(&recordingEngine{}, nil, nil, speaker, nil, defaultSpeech())

	assistant.Say(context.Background(), "안녕하세요")

	assert.Len(t, speaker.spoken, 1)
}

func TestAssistant_CanListen(t *testing.T) {
	full := NewAssistant(&recordingEngine{}, &mockRecorder{}, &mockTranscriber{}, nil, nil, defaultSpeech())
	assert.True(t, full.CanListen())

	noRecorder := NewAssistant(&recordingEngine{}, nil, &mockTranscriber{}, nil, nil, defaultSpeech())
	assert.False(t, noRecorder.CanListen())

	noTranscriber := NewAssistant(&recordingEngine{}, &mockRecorder{}, nil, nil, nil, defaultSpeech())
	assert.False(t, noTranscriber.CanListen())
}
