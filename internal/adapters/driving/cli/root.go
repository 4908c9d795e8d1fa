// Package cli implements the command line interface for the Yakdam
// medicine assistant.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	assistantService driving.AssistantService
	indexService     driving.IndexService
	settingsService  driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "yakdam",
	Short: "Voice-driven medicine information assistant",
	Long: `Yakdam answers questions about medicines in Korean.

Answers are grounded in an indexed medicine database when one is
available, with optional voice input/output and medicine box OCR.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetAssistantService injects the assistant service.
func SetAssistantService(svc driving.AssistantService) {
	assistantService = svc
}

// SetIndexService injects the index service.
func SetIndexService(svc driving.IndexService) {
	indexService = svc
}

// SetSettingsService injects the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
