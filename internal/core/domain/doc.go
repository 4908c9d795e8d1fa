// Package domain defines the core business entities for Yakdam.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MedicineRecord: A raw medicine record from a source data file
//   - FormattedDocument: A normalised, indexable text block with metadata
//   - QueryContext: The per-question state flowing through the pipeline
//   - TextRegion: A single recognised text region from box OCR
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
