// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON (or text) handler with stable keys and a configurable level.
//   - Attaching the service name and request correlation IDs (when present)
//     to each log record.
package pkglog
