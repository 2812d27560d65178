// Package logging provides structured logging for litedb.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging for the library and for applications
// embedding it.
//
// # Features
//
//   - JSON output for production (machine-parsable)
//   - Text output for development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig section of the YAML config:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("opening database", "path", cfg.Database.Path)
//	logger.Error("migration failed", "error", err)
//
// Logging is opt-in for the database handle: a nil logger on
// litedb.Config means silent operation.
package logging
