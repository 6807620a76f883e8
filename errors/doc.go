// Package errors provides the structured error type used for failures that are
// detected locally, before or after a request reaches the API: invalid input,
// URLs that do not belong to the configured API, and payloads that cannot be
// decoded into the client's types.
//
// HTTP-level failures (non-2xx responses, timeouts, refused connections) are
// reported by the httpclient package instead.
package errors
