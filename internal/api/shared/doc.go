// Package shared holds request decoding, response writing and trace ID
// helpers used by every HTTP handler.
package shared
