// Package logging provides a minimal logging facade for the bindings.
//
// It wraps a subset of log/slog behind a small Logger interface, so
// applications can swap in their own implementation, and offers FromEnv to
// configure the default handler from GLIBGO_LOG_LEVEL and GLIBGO_LOG_FORMAT.
package logging
