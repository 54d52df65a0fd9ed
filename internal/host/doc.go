// Package host provides TestServerHost, a fixturehost.ServerHost backed by an
// in-memory tree built once from fixture entries.
//
// Queries behave like a real file system under the configured case policy.
// Mutation is unsupported: WriteFile, Write, CreateDirectory and Exit panic
// with an error wrapping fixturehost.ErrNotSupported. Watches and timers are
// inert; their callbacks are never invoked, so tests can rely on the absence
// of asynchronous delivery.
package host
