// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (CLI/development vs production) and integrates with the Fiber web framework
// used by the serve mode.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request ID) from a Fiber context
// and attaches it to the log entry, ensuring that all logs related to a
// specific comparison request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (CLI / development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Comparison started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Comparison failed", zap.Error(err))
package logger
