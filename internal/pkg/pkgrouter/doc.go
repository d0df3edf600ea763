// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error-to-status mapping with {"detail": ...} bodies,
// logging, recovery, request body limits, and correlation ID propagation.
package pkgrouter
