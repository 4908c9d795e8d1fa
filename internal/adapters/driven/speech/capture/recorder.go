// Package capture records microphone audio by shelling out to a
// recording command. The command is configurable so any tool that can
// write a WAV file works; the defaults cover the common platforms.
package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// Ensure Recorder implements the interface.
var _ driven.Recorder = (*Recorder)(nil)

// Placeholders substituted into the recorder command.
const (
	PlaceholderSeconds = "{seconds}"
	PlaceholderPath    = "{path}"
)

// Recorder captures audio using an external command.
type Recorder struct {
	command string
}

// NewRecorder creates a recorder. When command is empty a platform
// default is used: arecord on Linux, sox's rec elsewhere.
func NewRecorder(command string) *Recorder {
	if command == "" {
		command = defaultCommand()
	}
	return &Recorder{command: command}
}

// defaultCommand picks a recording tool for the current platform.
func defaultCommand() string {
	if runtime.GOOS == "linux" {
		return "arecord -q -f cd -d {seconds} {path}"
	}
	return "rec -q {path} trim 0 {seconds}"
}

// Record captures audio for the given duration and returns the path of
// a WAV file holding the capture. The caller removes the file.
func (r *Recorder) Record(ctx context.Context, duration time.Duration) (string, error) {
	seconds := int(duration.Seconds())
	if seconds <= 0 {
		return "", fmt.Errorf("capture: duration must be positive")
	}

	tmp, err := os.CreateTemp("", "yakdam-capture-*.wav")
	if err != nil {
		return "", fmt.Errorf("create capture file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()

	args := buildArgs(r.command, seconds, path)
	if len(args) == 0 {
		os.Remove(path)
		return "", fmt.Errorf("capture: recorder command is empty")
	}

	logger.Debug("Recording %ds of audio with %s", seconds, args[0])

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("capture: %s failed: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}

	return path, nil
}

// buildArgs splits the command template and substitutes placeholders.
func buildArgs(command string, seconds int, path string) []string {
	fields := strings.Fields(command)
	args := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.ReplaceAll(field, PlaceholderSeconds, strconv.Itoa(seconds))
		field = strings.ReplaceAll(field, PlaceholderPath, path)
		args = append(args, field)
	}
	return args
}
