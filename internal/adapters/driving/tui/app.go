package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

// Spoken and displayed interaction messages.
const (
	msgGreeting      = "안녕하세요! 의약품 정보 안내 도우미 약담입니다."
	msgFarewell      = "이용해 주셔서 감사합니다. 건강하세요!"
	msgNotRecognised = "음성이 인식되지 않았습니다. 다시 시도해주세요."
	msgSaveNotReady  = "의약품 정보 저장 기능은 아직 준비 중입니다."
	msgNoVoice       = "음성 입력이 설정되지 않았습니다. T를 눌러 질문을 입력해주세요."
)

// state tracks which screen of the interaction loop is active.
type state int

const (
	stateMenu state = iota
	stateChoice
	stateTyping
	stateWorking
	stateAnswer
)

// answerMsg carries the result of a completed interaction.
type answerMsg struct {
	question string
	answer   string
	err      error
}

// noticeMsg carries a transient notice back to the menu.
type noticeMsg string

// App is the interactive menu following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	state    state
	input    textinput.Model
	spin     spinner.Model
	question string
	answer   string
	notice   string

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the interactive menu application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "무엇이 궁금하세요?"
	input.CharLimit = 200
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		state:  stateMenu,
		input:  input,
		spin:   spin,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model. The greeting is spoken as the menu
// appears.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.speakCmd(msgGreeting), a.spin.Tick)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case noticeMsg:
		a.notice = string(msg)
		a.state = stateMenu
		return a, nil

	case answerMsg:
		return a.handleAnswer(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.state == stateTyping {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey routes key presses by state.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	switch a.state {
	case stateMenu:
		switch strings.ToLower(msg.String()) {
		case "s":
			if !a.ports.Assistant.CanListen() {
				a.notice = msgNoVoice
				return a, nil
			}
			a.notice = ""
			a.state = stateChoice
			return a, nil
		case "t":
			a.notice = ""
			a.state = stateTyping
			a.input.SetValue("")
			return a, a.input.Focus()
		case "q":
			return a.quit()
		}

	case stateChoice:
		switch msg.String() {
		case "1":
			a.state = stateMenu
			return a, tea.Batch(
				a.speakCmd(msgSaveNotReady),
				func() tea.Msg { return noticeMsg(msgSaveNotReady) },
			)
		case "2":
			a.state = stateWorking
			return a, tea.Batch(a.voiceQueryCmd(), a.spin.Tick)
		case "esc":
			a.state = stateMenu
			return a, nil
		}

	case stateTyping:
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(a.input.Value())
			if question == "" {
				return a, nil
			}
			a.state = stateWorking
			a.input.Blur()
			return a, tea.Batch(a.typedQueryCmd(question), a.spin.Tick)
		case "esc":
			a.state = stateMenu
			a.input.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd
		}

	case stateAnswer:
		a.state = stateMenu
		a.question = ""
		a.answer = ""
		return a, nil

	case stateWorking:
		// Ignore keys while a question is in flight.
	}

	return a, nil
}

// handleAnswer moves to the answer screen and voices the result.
func (a *App) handleAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrSpeechUnavailable) {
			a.notice = msgNoVoice
		} else {
			a.notice = fmt.Sprintf("오류가 발생했습니다: %v", msg.err)
		}
		a.state = stateMenu
		return a, nil
	}
	if msg.question == "" {
		a.notice = msgNotRecognised
		a.state = stateMenu
		return a, a.speakCmd(msgNotRecognised)
	}

	a.question = msg.question
	a.answer = msg.answer
	a.notice = ""
	a.state = stateAnswer
	return a, a.speakCmd(msg.answer)
}

// quit says goodbye and stops the program.
func (a *App) quit() (tea.Model, tea.Cmd) {
	a.ports.Assistant.Say(a.ctx, msgFarewell)
	return a, tea.Quit
}

// voiceQueryCmd captures a spoken question and answers it.
func (a *App) voiceQueryCmd() tea.Cmd {
	return func() tea.Msg {
		ocrContext := a.boxContext()
		question, answer, err := a.ports.Assistant.AskVoice(a.ctx, ocrContext)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

// typedQueryCmd answers a typed question.
func (a *App) typedQueryCmd(question string) tea.Cmd {
	return func() tea.Msg {
		ocrContext := a.boxContext()
		answer := a.ports.Assistant.Ask(a.ctx, question, ocrContext)
		return answerMsg{question: question, answer: answer}
	}
}

// boxContext runs OCR on the configured box image, when any.
func (a *App) boxContext() string {
	if a.ports.Settings == nil {
		return ""
	}
	settings, err := a.ports.Settings.Get()
	if err != nil || settings.OCR.ImagePath == "" {
		return ""
	}
	return a.ports.Assistant.ExtractBoxContext(a.ctx, settings.OCR.ImagePath)
}

// speakCmd voices text without blocking the UI.
func (a *App) speakCmd(text string) tea.Cmd {
	return func() tea.Msg {
		a.ports.Assistant.Say(a.ctx, text)
		return nil
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("약담 (Yakdam)"))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(msgGreeting))
	b.WriteString("\n\n")

	switch a.state {
	case stateMenu:
		b.WriteString(a.styles.Normal.Render("S: 말로 질문하기"))
		b.WriteString("\n")
		b.WriteString(a.styles.Normal.Render("T: 입력해서 질문하기"))
		b.WriteString("\n")
		b.WriteString(a.styles.Normal.Render("Q: 종료"))
		if a.notice != "" {
			b.WriteString("\n\n")
			b.WriteString(a.styles.Error.Render(a.notice))
		}

	case stateChoice:
		b.WriteString(a.styles.Subtitle.Render("무엇을 도와드릴까요?"))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Normal.Render("1: 의약품 정보 저장"))
		b.WriteString("\n")
		b.WriteString(a.styles.Normal.Render("2: 의약품 질의"))
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render("esc: 뒤로"))

	case stateTyping:
		b.WriteString(a.styles.Subtitle.Render("질문을 입력하세요"))
		b.WriteString("\n\n")
		b.WriteString(a.input.View())
		b.WriteString("\n\n")
		b.WriteString(a.styles.Muted.Render("enter: 질문하기  esc: 뒤로"))

	case stateWorking:
		b.WriteString(a.spin.View())
		b.WriteString(a.styles.Normal.Render(" 답변을 준비하는 중입니다..."))

	case stateAnswer:
		b.WriteString(a.styles.Subtitle.Render("질문: " + a.question))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Answer.Render(a.answer))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Muted.Render("아무 키나 누르면 메뉴로 돌아갑니다"))
	}

	b.WriteString("\n")
	return b.String()
}
