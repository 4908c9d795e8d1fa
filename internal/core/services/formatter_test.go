package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

func TestFormatRecord_Permit_FixedOrder(t *testing.T) {
	rec := domain.MedicineRecord{
		"seQesitm":   "졸음, 어지러움",
		"itemName":   "타이레놀정500밀리그람",
		"efcyQesitm": "해열, 진통",
	}

	text, ok := FormatRecord(rec, domain.SchemaPermit)

	require.True(t, ok)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 3)
	// Field priority order, not map order.
	assert.Equal(t, "의약품명: 타이레놀정500밀리그람", lines[0])
	assert.Equal(t, "효능효과: 해열, 진통", lines[1])
	assert.Equal(t, "부작용: 졸음, 어지러움", lines[2])
}

func TestFormatRecord_Permit_OneLinePerPresentField(t *testing.T) {
	rec := domain.MedicineRecord{
		"itemName":        "게보린정",
		"entpName":        "삼진제약",
		"useMethodQesitm": "1회 1정",
	}

	text, ok := FormatRecord(rec, domain.SchemaPermit)

	require.True(t, ok)
	assert.Len(t, strings.Split(text, "\n"), 3)
	assert.NotContains(t, text, "부작용:")
	assert.NotContains(t, text, "보관방법:")
}

func TestFormatRecord_EmptyRecordProducesNoDocument(t *testing.T) {
	_, ok := FormatRecord(domain.MedicineRecord{}, domain.SchemaPermit)
	assert.False(t, ok)

	_, ok = FormatRecord(domain.MedicineRecord{}, domain.SchemaOverview)
	assert.False(t, ok)
}

func TestFormatRecord_UnrecognisedFieldsOnlyProducesNoDocument(t *testing.T) {
	rec := domain.MedicineRecord{"unknownField": "value"}

	_, ok := FormatRecord(rec, domain.SchemaPermit)

	assert.False(t, ok)
}

func TestFormatRecord_Overview_CasingFallback(t *testing.T) {
	rec := domain.MedicineRecord{
		"ITEM_NAME":  "판콜에스내복액",
		"drug_shape": "장방형",
	}

	text, ok := FormatRecord(rec, domain.SchemaOverview)

	require.True(t, ok)
	assert.Equal(t, "의약품명: 판콜에스내복액\n의약품 모양: 장방형", text)
}

func TestFormatRecord_Overview_LowerCaseKeyWinsWhenBothPresent(t *testing.T) {
	rec := domain.MedicineRecord{
		"item_name": "lower",
		"ITEM_NAME": "upper",
	}

	text, ok := FormatRecord(rec, domain.SchemaOverview)

	require.True(t, ok)
	assert.Equal(t, "의약품명: lower", text)
}

func TestFormatRecord_UnknownSchema(t *testing.T) {
	rec := domain.MedicineRecord{"itemName": "x"}

	_, ok := FormatRecord(rec, domain.SchemaKind("bogus"))

	assert.False(t, ok)
}

func TestFormatRecord_Idempotent(t *testing.T) {
	rec := domain.MedicineRecord{
		"itemName":   "타이레놀",
		"efcyQesitm": "해열",
	}

	first, ok1 := FormatRecord(rec, domain.SchemaPermit)
	second, ok2 := FormatRecord(rec, domain.SchemaPermit)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestDocumentFromRecord_Metadata(t *testing.T) {
	rec := domain.MedicineRecord{"itemName": "타이레놀정500밀리그람"}

	doc, ok := DocumentFromRecord(rec, domain.SchemaPermit)

	require.True(t, ok)
	assert.Equal(t, domain.SchemaPermit, doc.Source)
	assert.Equal(t, "타이레놀정500밀리그람", doc.ItemName)
	assert.Empty(t, doc.ID, "indexer assigns the ID")
}

func TestDocumentFromRecord_TruncatesLongItemName(t *testing.T) {
	rec := domain.MedicineRecord{"item_name": strings.Repeat("가", 180)}

	doc, ok := DocumentFromRecord(rec, domain.SchemaOverview)

	require.True(t, ok)
	assert.Equal(t, domain.MaxItemNameLen, len([]rune(doc.ItemName)))
}

func TestDocumentFromRecord_EmptyRecord(t *testing.T) {
	_, ok := DocumentFromRecord(domain.MedicineRecord{}, domain.SchemaOverview)
	assert.False(t, ok)
}
