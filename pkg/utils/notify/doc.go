// Package notify provides utilities for sending formatted notifications to CLI users.
//
// This package includes:
//   - [WriteMessage] for displaying formatted messages with type-specific symbols and colors
//   - [Spinner] for reporting the lifecycle of a sequential pipeline step
//   - [StageSeparatingWriter] for automatic blank line insertion between CLI stages
//
// Message types include success (✔), error (✗), warning (⚠), info (ℹ), activity (►)
// and title messages with customizable emojis.
package notify
