package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askImage string
	askVoice bool
	askSpeak bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a medicine",
	Long: `Answers a single question about a medicine in Korean.

The question is grounded in the indexed medicine database when one is
available. A photo of the medicine box can be supplied with --image;
text read off the box is added to the question as context.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askImage, "image", "", "path to a medicine box photo for OCR context")
	askCmd.Flags().BoolVar(&askVoice, "voice", false, "capture the question from the microphone")
	askCmd.Flags().BoolVar(&askSpeak, "speak", false, "speak the answer aloud")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	ctx := cmd.Context()
	ocrContext := assistantService.ExtractBoxContext(ctx, askImage)

	var question, answer string
	switch {
	case askVoice:
		var err error
		question, answer, err = assistantService.AskVoice(ctx, ocrContext)
		if err != nil {
			return err
		}
		if question == "" {
			cmd.Println("음성이 인식되지 않았습니다. 다시 시도해주세요.")
			return nil
		}
		cmd.Printf("질문: %s\n\n", question)

	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		question = args[0]
		answer = assistantService.Ask(ctx, question, ocrContext)

	default:
		return errors.New("a question is required unless --voice is used")
	}

	cmd.Println(answer)

	if askSpeak {
		assistantService.Say(ctx, answer)
	}
	return nil
}
