package pkgconfig

import "time"

// Config is the read-only view of configuration values used by the application.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetArray(key string) []string
	GetDuration(key string) time.Duration
	Close() error
}
