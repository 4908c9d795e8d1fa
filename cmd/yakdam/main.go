// Yakdam answers questions about medicines in Korean, grounded in an
// indexed medicine database, with optional voice input/output and
// medicine box OCR.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/ai"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/config/file"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driven/index/sqlite"
	"github.com/yakdam-labs/yakdam-cli/internal/adapters/driving/cli"
	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/core/services"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file in the working directory is a convenience for
	// development; absence is not an error.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to initialise config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	llm, err := ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		return err
	}
	if llm == nil {
		// No API key. Settings and version commands still work; the
		// assistant commands report the missing configuration.
		logger.Warn("LLM not configured. Run 'yakdam settings key' to store an API key.")
	} else {
		defer llm.Close()
	}

	// A missing or unreachable embedding service degrades to direct
	// answering instead of failing startup.
	embedder, err := ai.CreateAndValidateEmbeddingService(&settings.Embedding)
	if err != nil {
		logger.Warn("Embedding unavailable, answering without retrieval: %v", err)
		embedder = nil
	}
	if embedder != nil {
		defer embedder.Close()
	}

	indexer := services.NewIndexer(
		[]services.DataSource{
			{Path: settings.Data.PermitPath, Kind: domain.SchemaPermit},
			{Path: settings.Data.OverviewPath, Kind: domain.SchemaOverview},
		},
		settings.Index.PersistDir,
		embedder,
		sqlite.NewProvider(),
		settings.Embedding.BatchSize,
	)

	var index driven.VectorIndex
	if llm != nil {
		index, err = indexer.BuildOrLoad(context.Background())
		if err != nil {
			logger.Warn("Index unavailable, answering without retrieval: %v", err)
			index = nil
		}
		if index != nil {
			defer index.Close()
		}
	}

	cli.SetVersion(version)
	cli.SetIndexService(indexer)
	cli.SetSettingsService(settingsService)

	if llm != nil {
		genOpts := driven.GenerateOptions{
			MaxTokens:   settings.LLM.MaxTokens,
			Temperature: settings.LLM.Temperature,
		}
		engine := services.SelectEngine(index, embedder, llm, settings.Index, genOpts)

		recorder, transcriber, speaker, err := ai.CreateSpeechServices(settings.Speech, settings.LLM.APIKey)
		if err != nil {
			logger.Warn("Speech unavailable, continuing without voice: %v", err)
		}
		if transcriber != nil {
			defer transcriber.Close()
		}
		if speaker != nil {
			defer speaker.Close()
		}

		extractor, err := ai.CreateTextExtractor(settings.OCR)
		if err != nil {
			logger.Warn("OCR unavailable, continuing without box reading: %v", err)
			extractor = nil
		}

		assistant := services.NewAssistant(
			engine, recorder, transcriber, speaker, extractor, settings.Speech,
		)
		cli.SetAssistantService(assistant)
	}

	return cli.Execute()
}
