// Package event carries file upload and delete notifications from the HTTP
// path to background handlers.
package event
