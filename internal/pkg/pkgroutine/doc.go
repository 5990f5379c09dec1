// Package pkgroutine runs named background tasks for the application.
//
// Task errors and recovered panics are collected and surfaced by Wait, so a
// failing bootstrap step is reported at shutdown instead of being lost.
package pkgroutine
