package util

import "fmt"

// DefaultLogMaxLen is the default maximum length for truncated log output (1KB)
const DefaultLogMaxLen = 1024

// TruncateLog truncates long strings for verbose logging.
// This helps control log file growth while maintaining diagnostics capability.
func TruncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + fmt.Sprintf("... [truncated, %d bytes total]", len(s))
}

// TruncateError is a convenience wrapper for TruncateLog used when
// recording upstream error snippets. It uses DefaultLogMaxLen.
func TruncateError(err error) string {
	if err == nil {
		return ""
	}
	return TruncateLog(err.Error(), DefaultLogMaxLen)
}
