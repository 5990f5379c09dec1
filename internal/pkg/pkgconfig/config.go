package pkgconfig

import "time"

// Config reads typed configuration values by dotted key (for example "server.address.http").
type Config interface {
	GetBool(key string) bool
	GetString(key string) string
	GetDuration(key string) time.Duration
	GetArray(key string) []string
	Close() error
}
