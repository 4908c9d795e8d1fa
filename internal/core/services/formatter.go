package services

import (
	"strings"

	"github.com/yakdam-labs/yakdam-cli/internal/core/domain"
)

// permitFields is the fixed rendering order for the permit schema.
// Absent fields produce no line at all.
var permitFields = []struct {
	key   string
	label string
}{
	{"itemName", "의약품명"},
	{"entpName", "제조사"},
	{"efcyQesitm", "효능효과"},
	{"useMethodQesitm", "용법용량"},
	{"atpnWarnQesitm", "주의사항 경고"},
	{"atpnQesitm", "주의사항"},
	{"intrcQesitm", "상호작용"},
	{"seQesitm", "부작용"},
	{"depositMethodQesitm", "보관방법"},
}

// overviewFields is the fixed rendering order for the overview schema.
// Each logical field may be stored under either a lower-case or an
// upper-case key; candidates are tried in order and the first non-empty
// one wins.
var overviewFields = []struct {
	keys  []string
	label string
}{
	{[]string{"item_name", "ITEM_NAME"}, "의약품명"},
	{[]string{"entp_name", "ENTP_NAME"}, "제조사"},
	{[]string{"chart", "CHART"}, "성상"},
	{[]string{"drug_shape", "DRUG_SHAPE"}, "의약품 모양"},
	{[]string{"color_class1", "COLOR_CLASS1"}, "색상 앞"},
	{[]string{"color_class2", "COLOR_CLASS2"}, "색상 뒤"},
	{[]string{"class_name", "CLASS_NAME"}, "약품 분류"},
	{[]string{"etc_otc_name", "ETC_OTC_NAME"}, "전문/일반"},
}

// FormatRecord renders a medicine record into the newline-joined
// "label: value" text block for its schema. Returns ok=false when the
// record contributes no non-empty field; callers must not create a
// document in that case.
func FormatRecord(rec domain.MedicineRecord, kind domain.SchemaKind) (string, bool) {
	var lines []string

	switch kind {
	case domain.SchemaPermit:
		for _, f := range permitFields {
			if v := rec.Field(f.key); v != "" {
				lines = append(lines, f.label+": "+v)
			}
		}
	case domain.SchemaOverview:
		for _, f := range overviewFields {
			if v := rec.FirstField(f.keys...); v != "" {
				lines = append(lines, f.label+": "+v)
			}
		}
	default:
		return "", false
	}

	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// DocumentFromRecord builds the indexable document for a record,
// attaching the source schema and the truncated item name. The ID is
// left empty; the indexer assigns one when the document is stored.
func DocumentFromRecord(rec domain.MedicineRecord, kind domain.SchemaKind) (domain.FormattedDocument, bool) {
	text, ok := FormatRecord(rec, kind)
	if !ok {
		return domain.FormattedDocument{}, false
	}

	var name string
	switch kind {
	case domain.SchemaPermit:
		name = rec.Field("itemName")
	case domain.SchemaOverview:
		name = rec.FirstField("item_name", "ITEM_NAME")
	}

	return domain.FormattedDocument{
		Text:     text,
		Source:   kind,
		ItemName: domain.TruncateItemName(name),
	}, true
}
