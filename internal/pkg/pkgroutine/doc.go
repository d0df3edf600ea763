// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and logs
// panics so that background work (such as filling the dataset cache) does
// not crash the process silently. The application drains it on shutdown.
package pkgroutine
