package domain

import "strings"

// SchemaKind identifies which of the two source record schemas a
// MedicineRecord came from. The two government data sets describe the
// same medicines with different field sets and key casing conventions.
type SchemaKind string

// Available schema kinds.
const (
	// SchemaPermit is the drug permit/authorization data set
	// (efficacy, dosage, warnings, interactions, side effects).
	SchemaPermit SchemaKind = "permit"

	// SchemaOverview is the drug overview data set
	// (appearance, shape, colours, classification). Its keys appear in
	// both lower-case and upper-case variants depending on the export.
	SchemaOverview SchemaKind = "overview"
)

// IsValid returns true if the schema kind is recognised.
func (k SchemaKind) IsValid() bool {
	switch k {
	case SchemaPermit, SchemaOverview:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SchemaKind) String() string {
	return string(k)
}

// MedicineRecord is a single raw medicine entry from a source data file.
// Every field is optional; only non-empty string values are retained.
type MedicineRecord map[string]string

// NewMedicineRecord builds a record from decoded JSON, keeping only
// fields whose values are non-empty strings. Null, numeric and nested
// values are dropped rather than coerced.
func NewMedicineRecord(raw map[string]any) MedicineRecord {
	rec := make(MedicineRecord, len(raw))
	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		rec[key] = s
	}
	return rec
}

// Field returns the value for key, or "" when absent.
func (r MedicineRecord) Field(key string) string {
	return r[key]
}

// FirstField returns the value of the first present key from candidates.
// This resolves the overview schema's dual casing conventions: the same
// logical field may be stored under either of two keys.
func (r MedicineRecord) FirstField(candidates ...string) string {
	for _, key := range candidates {
		if v := r[key]; v != "" {
			return v
		}
	}
	return ""
}

// Empty returns true if the record holds no usable fields at all.
func (r MedicineRecord) Empty() bool {
	return len(r) == 0
}
