package assemblyai

import (
	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/httpclient"
)

// IsValidation reports whether err was raised locally before any network call
// because an argument was missing or malformed.
func IsValidation(err error) bool {
	return errors.IsValidation(err)
}

// IsInvalidURL reports whether err is a URL outside the client's base URL.
func IsInvalidURL(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidURL)
}

// IsDeserialization reports whether a response body could not be decoded.
func IsDeserialization(err error) bool {
	return errors.HasCode(err, errors.ErrCodeDeserialization)
}

// IsHTTPStatus reports whether the server answered with a non-2xx status.
func IsHTTPStatus(err error) bool {
	return httpclient.IsHTTPStatus(err)
}

// IsTransport reports whether the request failed before a response arrived.
func IsTransport(err error) bool {
	return httpclient.IsTransport(err)
}
