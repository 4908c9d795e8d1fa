package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or load the medicine document index",
	Long: `Builds the document index from the configured medicine data files,
or loads a previously persisted index. An existing index directory is
loaded as-is; remove it to force a rebuild from the data files.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	idx, err := indexService.BuildOrLoad(cmd.Context())
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}
	if idx == nil {
		cmd.Println("No documents available; the assistant will answer without retrieval.")
		return nil
	}
	defer idx.Close()

	count, err := idx.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("index count failed: %w", err)
	}
	cmd.Printf("Index ready with %d documents.\n", count)
	return nil
}
