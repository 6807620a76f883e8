package httpclient

import (
	"io"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, DELETE, etc).
	Method string
	// Path is appended to the adapter's BaseURL. It may carry its own query
	// string, as paths derived from pagination cursors do.
	Path string
	// Headers are request-specific headers (merged with adapter defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is JSON-encoded with null-valued keys removed.
	Body any
	// Data is streamed as the raw request body with chunked transfer encoding.
	// Body and Data are mutually exclusive. If Data implements io.Closer it
	// is closed once the request has been sent or rejected.
	Data io.Reader
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
	// RequestID is the X-Request-Id sent with the request.
	RequestID string
}
