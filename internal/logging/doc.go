// Package logging provides concrete implementations of the dirtree.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed, line-oriented messages to stderr (or any io.Writer)
//   - ZapLogger: Structured output through a go.uber.org/zap logger
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
