// Package pkgerror defines the error kinds shared by the application.
//
// Operations return *Error values built with NewNotFound, NewBadInput or
// NewInternal. The router is the only place that turns them into HTTP status
// codes and {"detail": ...} bodies.
package pkgerror
