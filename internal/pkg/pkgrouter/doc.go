// Package pkgrouter is the HTTP edge of the service.
//
// Handlers return a payload or an error. Payloads are written as JSON with the
// status from an optional StatusCode method, and errors are translated into
// the {"status", "message"} envelope using pkgerror. Every route runs behind
// panic recovery, correlation ids and request logging; product routes add the
// API key check.
package pkgrouter
