// Package pkguid provides the id generators used by the application.
//
// Both generators satisfy StringID: UUID (version 4) for product records and
// Snowflake for correlation ids.
package pkguid
