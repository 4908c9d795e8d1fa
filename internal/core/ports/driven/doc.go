// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - LLMService: Language model completion. Answers cannot be produced without it.
//   - ConfigStore: Application configuration.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EmbeddingService: Generates vector embeddings. Without it, retrieval is
//     disabled and answers fall back to direct completion.
//   - VectorIndex: Persisted document index. Nil when no document was ever
//     produced; retrieval stays off for the run.
//   - Transcriber/Recorder: Voice question capture. Without them, questions
//     are typed.
//   - Speaker: Spoken answers. Failures are logged and swallowed.
//   - TextExtractor: Medicine box OCR. Without it, questions carry no box
//     context.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
