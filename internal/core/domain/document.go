package domain

// MaxItemNameLen caps the item name stored in document metadata.
// Counted in runes so multi-byte Korean names are not cut mid-character.
const MaxItemNameLen = 100

// FormattedDocument is a normalised text block derived from one
// MedicineRecord, ready for embedding and retrieval. Documents are
// created once at index-build time and never mutated afterwards.
type FormattedDocument struct {
	// ID is the unique identifier assigned when the document is indexed.
	ID string

	// Text is the newline-joined "label: value" rendition of the
	// record's present fields, in the schema's fixed priority order.
	Text string

	// Source records which schema the document was built from.
	Source SchemaKind

	// ItemName is the medicine name, truncated to MaxItemNameLen runes.
	ItemName string
}

// TruncateItemName trims a medicine name to MaxItemNameLen runes.
func TruncateItemName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxItemNameLen {
		return name
	}
	return string(runes[:MaxItemNameLen])
}

// SimilarDocument pairs a retrieved document with its similarity score.
type SimilarDocument struct {
	// Document is the retrieved document.
	Document FormattedDocument

	// Similarity is the cosine similarity to the query (0-1).
	Similarity float64
}
