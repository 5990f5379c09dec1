// Package pkglog installs the JSON slog logger used by the service.
//
// Records carry "ts", "severity" and "file" keys, the service name, and the
// request correlation id when the context has one. The minimum level can be
// changed at runtime with SetLevel.
package pkglog
