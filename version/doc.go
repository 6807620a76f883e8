// Package version reports the build version of the client and derives the
// User-Agent sent with every API request.
//
// Values are stamped at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/assemblyai-go/version.Version=1.0.0"
package version
