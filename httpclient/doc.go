// Package httpclient is the request pipeline shared by every API endpoint.
//
// An Adapter resolves paths against a base URL, injects authentication last
// so callers cannot override it, encodes JSON bodies with null-valued keys
// removed, streams raw byte bodies with chunked transfer encoding, and
// classifies non-2xx responses into *Error values. Each request carries an
// X-Request-Id, runs inside an OpenTelemetry span and is logged at debug
// level.
//
// # Basic Usage
//
//	a, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.assemblyai.com/v2/",
//	    Auth:    httpclient.APIKeyAuthHeader(apiKey, "authorization"),
//	})
//
//	resp, err := httpclient.Send[Transcript](a, ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "transcript/" + id,
//	})
//
// # Errors
//
// Non-2xx responses are *Error with StatusCode set (IsHTTPStatus). Network
// failures are *Error with code timeout or connection (IsTransport). There are
// no retries.
package httpclient
