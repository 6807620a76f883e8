// Package util provides small generic helpers shared across the client:
// pointer construction for optional request fields, first-non-zero selection
// for configuration defaults, and cleanup of values read from the environment.
package util
