package services

import (
	"context"
	"strings"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driven"
	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
	"github.com/yakdam-labs/yakdam-cli/internal/logger"
)

// Fixed user-facing messages. Whatever fails inside the pipeline, the
// caller receives one of these, never an error.
const (
	// MsgNoInformation replaces empty or whitespace-only answers.
	MsgNoInformation = "죄송합니다. 관련된 정보를 찾을 수 없습니다."

	// MsgAnswerFailed replaces any retrieval or synthesis failure.
	MsgAnswerFailed = "죄송합니다. 질문 처리 중 오류가 발생했습니다."
)

// treeSummarizeCharBudget bounds how much passage text goes into one
// synthesis prompt before partial answers are merged hierarchically.
const treeSummarizeCharBudget = 4000

// maxTreeDepth stops pathological recursion when partial answers never
// shrink below the budget.
const maxTreeDepth = 8

// Ensure both engine variants implement the interface.
var (
	_ driving.AnswerEngine = (*IndexedEngine)(nil)
	_ driving.AnswerEngine = (*DirectEngine)(nil)
)

// IndexedEngine answers by retrieving similar documents from the index
// and synthesizing over them. Chosen at startup when an index exists.
type IndexedEngine struct {
	index    driven.VectorIndex
	embedder driven.EmbeddingService
	llm      driven.LLMService
	topK     int
	cutoff   float64
	genOpts  driven.GenerateOptions
}

// NewIndexedEngine creates the retrieval-backed engine.
func NewIndexedEngine(
	index driven.VectorIndex,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	cfg domain.IndexSettings,
	genOpts driven.GenerateOptions,
) *IndexedEngine {
	topK := cfg.TopK
	if topK <= 0 {
		topK = 10
	}
	return &IndexedEngine{
		index:    index,
		embedder: embedder,
		llm:      llm,
		topK:     topK,
		cutoff:   cfg.SimilarityCutoff,
		genOpts:  genOpts,
	}
}

// Mode describes the engine variant.
func (e *IndexedEngine) Mode() string { return "indexed" }

// Answer retrieves, filters and synthesizes. Always returns
// presentable text.
func (e *IndexedEngine) Answer(ctx context.Context, enhancedPrompt string) string {
	vector, err := e.embedder.Embed(ctx, enhancedPrompt)
	if err != nil {
		logAnswerFailure(domain.StageEmbed, err)
		return MsgAnswerFailed
	}

	hits, err := e.index.Search(ctx, vector, e.topK)
	if err != nil {
		logAnswerFailure(domain.StageRetrieve, err)
		return MsgAnswerFailed
	}

	passages := e.filterPassages(hits)
	logger.Debug("Retrieval: %d hits, %d above cutoff %.2f", len(hits), len(passages), e.cutoff)
	if len(passages) == 0 {
		return MsgNoInformation
	}

	answer, err := e.treeSummarize(ctx, enhancedPrompt, passages, 0)
	if err != nil {
		logAnswerFailure(domain.StageSynthesize, err)
		return MsgAnswerFailed
	}

	return presentable(answer)
}

// filterPassages keeps the text of hits strictly above the similarity
// cutoff. The cutoff is exclusive: a score equal to it is dropped.
func (e *IndexedEngine) filterPassages(hits []domain.SimilarDocument) []string {
	var passages []string
	for _, hit := range hits {
		if hit.Similarity > e.cutoff {
			passages = append(passages, hit.Document.Text)
		}
	}
	return passages
}

// treeSummarize hierarchically combines passages into one answer.
// Passages are packed into prompts under a character budget; each
// prompt yields a partial answer, and the partial answers are merged
// the same way until a single answer remains.
func (e *IndexedEngine) treeSummarize(ctx context.Context, query string, texts []string, depth int) (string, error) {
	groups := packGroups(texts, treeSummarizeCharBudget)

	answers := make([]string, 0, len(groups))
	for _, group := range groups {
		partial, err := e.llm.Generate(ctx, synthesisPrompt(query, group), e.genOpts)
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(partial); trimmed != "" {
			answers = append(answers, trimmed)
		}
	}

	switch {
	case len(answers) == 0:
		return "", nil
	case len(answers) == 1:
		return answers[0], nil
	case depth >= maxTreeDepth:
		return strings.Join(answers, "\n\n"), nil
	default:
		return e.treeSummarize(ctx, query, answers, depth+1)
	}
}

// packGroups greedily joins texts into blocks not exceeding budget
// characters. Every group holds at least one text, so an oversized
// single passage still forms its own group.
func packGroups(texts []string, budget int) []string {
	var groups []string
	var current strings.Builder

	for _, text := range texts {
		if current.Len() > 0 && current.Len()+len(text) > budget {
			groups = append(groups, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(text)
	}
	if current.Len() > 0 {
		groups = append(groups, current.String())
	}
	return groups
}

// synthesisPrompt grounds the query in a block of passage text.
func synthesisPrompt(query, contextBlock string) string {
	var b strings.Builder
	b.WriteString("다음은 의약품 정보 데이터베이스에서 찾은 내용입니다.\n")
	b.WriteString("---------------------\n")
	b.WriteString(contextBlock)
	b.WriteString("\n---------------------\n")
	b.WriteString("위 내용만을 바탕으로 다음 요청에 답해주세요. 관련 내용이 없다면 없다고 답해주세요.\n\n")
	b.WriteString(query)
	return b.String()
}

// DirectEngine answers with a plain completion. Chosen at startup when
// no document was ever indexed.
type DirectEngine struct {
	llm     driven.LLMService
	genOpts driven.GenerateOptions
}

// NewDirectEngine creates the completion-only engine.
func NewDirectEngine(llm driven.LLMService, genOpts driven.GenerateOptions) *DirectEngine {
	return &DirectEngine{llm: llm, genOpts: genOpts}
}

// Mode describes the engine variant.
func (e *DirectEngine) Mode() string { return "direct" }

// Answer sends the enhanced prompt straight to the language model.
func (e *DirectEngine) Answer(ctx context.Context, enhancedPrompt string) string {
	answer, err := e.llm.Generate(ctx, enhancedPrompt, e.genOpts)
	if err != nil {
		logAnswerFailure(domain.StageComplete, err)
		return MsgAnswerFailed
	}
	return presentable(answer)
}

// SelectEngine picks the engine variant once at startup: retrieval when
// an index exists, direct completion otherwise.
func SelectEngine(
	index driven.VectorIndex,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	cfg domain.IndexSettings,
	genOpts driven.GenerateOptions,
) driving.AnswerEngine {
	if index != nil && embedder != nil {
		return NewIndexedEngine(index, embedder, llm, cfg, genOpts)
	}
	return NewDirectEngine(llm, genOpts)
}

// presentable maps empty or whitespace-only generations to the fixed
// no-information message.
func presentable(answer string) string {
	if strings.TrimSpace(answer) == "" {
		return MsgNoInformation
	}
	return answer
}

// logAnswerFailure records the pipeline stage for observability. The
// detail stays in the logs; the user only ever sees the fixed apology.
func logAnswerFailure(stage domain.AnswerStage, err error) {
	aerr := &domain.AnswerError{Stage: stage, Err: err}
	logger.Warn("%v", aerr)
}
