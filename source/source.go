// Package source enumerates and reads IOMeter report files from a
// local directory or an S3-compatible bucket.
package source

import "strings"

// splitLines breaks file content into lines, tolerating CRLF endings
// (IOMeter runs on Windows, so CRLF is the common case).
func splitLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
