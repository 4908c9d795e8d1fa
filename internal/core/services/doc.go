// Package services implements the driving port interfaces.
// Services contain the core business logic - document formatting,
// index build/load, question enhancement and answer synthesis - and
// orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external service dependencies of their
// own; everything infrastructural arrives through a driven port.
package services
