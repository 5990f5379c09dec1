// Package pkgauth implements the shared-secret credential check used to guard
// the API.
//
// The secret is loaded once at startup. An empty secret rejects every
// credential, so the application treats it as a fatal misconfiguration.
package pkgauth
