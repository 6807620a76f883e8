package main

import (
	"github.com/kbukum/assemblyai-go/assemblyai"
	"github.com/kbukum/assemblyai-go/httpclient"
)

// errorHint suggests a next step for the failures a user can act on.
func errorHint(err error) string {
	switch {
	case err == nil:
		return ""
	case httpclient.IsAuth(err):
		return "the API key was rejected; check --api-key or ASSEMBLYAI_API_KEY"
	case httpclient.IsNotFound(err):
		return "no such transcript; list ids with 'assemblyai transcript list'"
	case httpclient.IsRateLimit(err):
		return "rate limited by the API; wait and run the command again"
	case httpclient.IsServerError(err):
		return "the API reported a server error; try again later"
	case httpclient.IsTimeout(err):
		return "the request timed out; raise ASSEMBLYAI_TIMEOUT for large files"
	case httpclient.IsConnection(err):
		return "could not reach the API; check --base-url and your network"
	case assemblyai.IsInvalidURL(err):
		return "the server returned a page cursor outside --base-url"
	default:
		return ""
	}
}
