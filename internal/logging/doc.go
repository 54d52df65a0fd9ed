// Package logging provides concrete implementations of the fixturehost.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes plain prefixed lines to stderr (or any writer)
//   - StructuredLogger: Writes JSON lines through zerolog, for CI log collection
//   - NullLogger: Discards all messages (the default for hosts built in tests)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
