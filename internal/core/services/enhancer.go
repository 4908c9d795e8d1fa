package services

import "strings"

// Prompt building blocks. The assistant speaks Korean end to end; the
// templates match the data set language.
const (
	promptPreamble = "의약품 정보 데이터베이스를 바탕으로 다음 질문에 답해주세요.\n\n"

	promptStyle = "답변은 일반인이 이해하기 쉽게 설명해주시고, 중요한 주의사항이 있다면 반드시 포함해주세요. " +
		"핵심 요점을 먼저 이야기하고, 가급적 물어본 질문의 핵심 내용만 대답해주세요. " +
		"질문에 포함되지 않는 내용은 답변하지 마세요."

	suffixSideEffects  = " 부작용과 이상반응 정보를 중심으로 설명해주세요."
	suffixDosage       = " 알약의 경우 몇 알 단위로, 액체의 경우 mg 단위로 설명해주세요. 사용법 또는 용량을 중심으로 설명해주세요."
	suffixInteractions = " 약물 상호작용과 병용 금기 정보를 중심으로 설명해주세요."
)

// EnhanceQuestion rewrites the raw user question into the instruction-
// augmented prompt sent to the answer engine. Deterministic; the
// category suffix is chosen by first keyword match against the raw
// question and categories never combine.
func EnhanceQuestion(question, ocrContext string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)

	if ocrContext != "" {
		b.WriteString("사용자가 입력으로 넣은 의약품 정보입니다 : ")
		b.WriteString(ocrContext)
		b.WriteString("\n\n")
	}

	b.WriteString("질문: ")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(promptStyle)
	b.WriteString(categorySuffix(question))

	return b.String()
}

// categorySuffix picks the focus instruction for the question category.
// Checked in priority order; the first match wins.
func categorySuffix(question string) string {
	switch {
	case strings.Contains(question, "부작용"):
		return suffixSideEffects
	case strings.Contains(question, "용법") || strings.Contains(question, "용량"):
		return suffixDosage
	case strings.Contains(question, "상호작용") || strings.Contains(question, "같이"):
		return suffixInteractions
	default:
		return ""
	}
}

// FormatOCRContext wraps extracted box text in the fixed explanatory
// template the enhancer expects. Returns "" for blank input so callers
// can treat "nothing extracted" and "nothing usable" the same way.
func FormatOCRContext(ocrText string) string {
	cleaned := strings.TrimSpace(ocrText)
	if cleaned == "" {
		return ""
	}

	return "[약품 상자에서 추출된 정보]\n" +
		cleaned +
		"\n\n위 정보는 사용자가 제시한 약품 상자에서 OCR로 추출한 내용입니다.\n" +
		"이 정보를 참고하여 질문에 답변해주세요."
}
