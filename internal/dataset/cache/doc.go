// Package cache stores parsed datasets so repeated reads of an unchanged
// file skip decoding and parsing.
package cache
