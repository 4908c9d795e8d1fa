package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the assistant's settings.

Use 'settings key' to store the OpenAI API key and 'settings set' for
individual configuration values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Store the OpenAI API key",
	Long: `Prompts for the OpenAI API key and stores it in the config file.

The OPENAI_API_KEY environment variable always takes precedence over
the stored key.`,
	RunE: runSettingsKey,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value by dotted key, e.g.:

  yakdam settings set llm.model gpt-4o
  yakdam settings set speech.enabled true
  yakdam settings set ocr.base_url http://localhost:8868`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Embedding]")
	cmd.Printf("  Model: %s\n", settings.Embedding.Model)
	cmd.Printf("  Batch size: %d\n", settings.Embedding.BatchSize)
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  Persist dir: %s\n", settings.Index.PersistDir)
	cmd.Printf("  Top K: %d\n", settings.Index.TopK)
	cmd.Printf("  Similarity cutoff: %.2f\n", settings.Index.SimilarityCutoff)
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Permit data: %s\n", settings.Data.PermitPath)
	cmd.Printf("  Overview data: %s\n", settings.Data.OverviewPath)
	cmd.Println()

	cmd.Println("[Speech]")
	cmd.Printf("  Enabled: %t\n", settings.Speech.Enabled)
	cmd.Printf("  Voice: %s\n", settings.Speech.Voice)
	cmd.Printf("  Speed: %s\n", settings.Speech.Speed)
	cmd.Printf("  Capture seconds: %d\n", settings.Speech.CaptureSeconds)
	cmd.Println()

	cmd.Println("[OCR]")
	if settings.OCR.BaseURL != "" {
		cmd.Printf("  Endpoint: %s\n", settings.OCR.BaseURL)
		cmd.Printf("  Min confidence: %.2f\n", settings.OCR.MinConfidence)
	} else {
		cmd.Printf("  Endpoint: (not configured)\n")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("OpenAI API key: ")
	key := readPassword()
	cmd.Println()

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Println("API key stored.")
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, coerceValue(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s.\n", key)
	return nil
}

// coerceValue turns CLI string input into the natural TOML type.
func coerceValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	var i int64
	if _, err := fmt.Sscanf(value, "%d", &i); err == nil && fmt.Sprintf("%d", i) == value {
		return i
	}
	var f float64
	if _, err := fmt.Sscanf(value, "%g", &f); err == nil && strings.ContainsAny(value, ".eE") {
		return f
	}
	return value
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
