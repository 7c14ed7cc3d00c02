package util

import "os"

// IsVerbose checks if the TONERELAY_VERBOSE environment variable is set.
// Verbose mode enables detailed request metadata logging; it never logs
// submitted text content.
func IsVerbose() bool {
	v := os.Getenv("TONERELAY_VERBOSE")
	return v == "1" || v == "true"
}
